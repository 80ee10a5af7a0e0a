package ssd1306

import (
	"image"

	"github.com/kcgauge/ssd1306/image1bit"
)

// DrawMap writes m into the pending frame with its top left corner at (x, y).
//
// Pixels falling outside the display are dropped. Only the bits covered by m
// change, so independently drawn maps compose. Invalid maps are logged and
// ignored. DrawMap never talks to the display, call Render to show the result.
func (d *Dev) DrawMap(x, y int, m image1bit.PixelMap) {
	if err := m.Validate(); err != nil {
		d.log.Error("draw: invalid map", "x", x, "y", y, "width", m.Width(), "height", m.Height(), "err", err)
		return
	}

	r := image.Rect(x, y, x+m.Width(), y+m.Height()).Intersect(d.rect)
	if r.Empty() {
		// Nothing to draw, map is out of bounds
		return
	}

	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := m[py-y]
		for px := r.Min.X; px < r.Max.X; px++ {
			d.pending.SetBit(px, py, image1bit.Bit(row[px-x]))
		}
	}
}

// Clear turns off the pixels of the given rectangle in the pending frame.
func (d *Dev) Clear(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.DrawMap(x, y, image1bit.NewPixelMap(width, height))
}

// ClearAll turns off every pixel of the pending frame.
func (d *Dev) ClearAll() {
	d.pending.Fill(0)
}
