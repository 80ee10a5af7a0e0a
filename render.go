package ssd1306

import (
	"bytes"
)

// Render sends the smallest rectangle of pages covering every difference
// between the pending frame and the frame shown by the display.
//
// Nothing is sent when the frames are equal. If a transmission fails the
// error is returned and the next Render sends the same rectangle again.
func (d *Dev) Render() error {
	if d.halted {
		return ErrHalted
	}

	left, right, top, bottom := d.calculateDiff()
	if left >= right {
		// The frame and display contain the same data, no need to render
		return nil
	}

	if err := d.sendLong(cmdColumnAddress, byte(left), byte(right-1)); err != nil {
		return err
	}
	if err := d.sendLong(cmdPageAddress, byte(top), byte(bottom-1)); err != nil {
		return err
	}
	if err := d.sendData(d.extractRegion(left, right, top, bottom)); err != nil {
		return err
	}
	d.commit(left, right, top, bottom)

	d.log.Debug("rendered", "left", left, "right", right, "top", top, "bottom", bottom,
		"bytes", (right-left)*(bottom-top))
	return nil
}

// calculateDiff compares the pending and committed frames and returns the
// changed columns [left, right) and pages [top, bottom).
// left >= right when nothing changed.
func (d *Dev) calculateDiff() (left, right, top, bottom int) {
	width := d.rect.Dx()
	pages := d.pending.Stride

	left, right = width, 0
	top, bottom = pages, 0

	for x := 0; x < width; x++ {
		colStart := x * pages
		colEnd := colStart + pages
		if bytes.Equal(d.pending.Pix[colStart:colEnd], d.committed.Pix[colStart:colEnd]) {
			continue
		}

		// Scan pages within this column for precise boundaries
		for p := 0; p < pages; p++ {
			if d.pending.Pix[colStart+p] != d.committed.Pix[colStart+p] {
				if p < top {
					top = p
				}
				if p+1 > bottom {
					bottom = p + 1
				}
			}
		}

		if x < left {
			left = x
		}
		right = x + 1
	}
	return
}

// extractRegion returns the pending bytes of the rectangle, column by
// column, which is the order the controller expects in vertical addressing
// mode.
func (d *Dev) extractRegion(left, right, top, bottom int) []byte {
	pages := d.pending.Stride
	height := bottom - top

	result := make([]byte, 0, (right-left)*height)
	for x := left; x < right; x++ {
		start := x*pages + top
		result = append(result, d.pending.Pix[start:start+height]...)
	}
	return result
}

// commit records the rectangle as shown by the display.
func (d *Dev) commit(left, right, top, bottom int) {
	pages := d.pending.Stride
	for x := left; x < right; x++ {
		start := x*pages + top
		end := x*pages + bottom
		copy(d.committed.Pix[start:end], d.pending.Pix[start:end])
	}
}
