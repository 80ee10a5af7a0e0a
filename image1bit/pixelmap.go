package image1bit

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrEmpty is returned by Validate for a map without rows.
	ErrEmpty = errors.New("image1bit: map is empty")
	// ErrZeroWidth is returned by Validate for a map whose rows have no pixels.
	ErrZeroWidth = errors.New("image1bit: map width is 0")
	// ErrRagged is returned by Validate for a map whose rows differ in width.
	ErrRagged = errors.New("image1bit: map width is not constant")
)

// PixelMap is a rectangular grid of pixels indexed as m[row][column].
//
// A PixelMap built with NewPixelMap is always valid; maps built by hand
// should be checked with Validate before use.
type PixelMap [][]bool

// NewPixelMap returns an all-off map of w columns and h rows.
func NewPixelMap(w, h int) PixelMap {
	if w < 0 || h < 0 {
		return nil
	}
	cells := make([]bool, w*h)
	m := make(PixelMap, h)
	for y := range m {
		m[y] = cells[y*w : (y+1)*w : (y+1)*w]
	}
	return m
}

// FromImage converts the pixels of img inside r to a PixelMap using BitModel.
func FromImage(img image.Image, r image.Rectangle) PixelMap {
	r = r.Intersect(img.Bounds())
	m := NewPixelMap(r.Dx(), r.Dy())
	for y := range m {
		for x := range m[y] {
			m[y][x] = bool(BitModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(Bit))
		}
	}
	return m
}

// Width returns the number of columns of the first row.
func (m PixelMap) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m PixelMap) Height() int {
	return len(m)
}

// Validate reports whether m can be drawn.
func (m PixelMap) Validate() error {
	if len(m) == 0 {
		return ErrEmpty
	}
	w := len(m[0])
	for y, row := range m {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d pixels, row 0 has %d", ErrRagged, y, len(row), w)
		}
	}
	if w == 0 {
		return ErrZeroWidth
	}
	return nil
}

// Mirror returns a copy of m with its columns in reverse order.
func (m PixelMap) Mirror() PixelMap {
	w := m.Width()
	out := NewPixelMap(w, m.Height())
	for y := range out {
		for x := range out[y] {
			out[y][x] = m[y][w-1-x]
		}
	}
	return out
}

// Blit copies src into m with its top left corner at (x, y). Pixels falling
// outside m are dropped.
func (m PixelMap) Blit(x, y int, src PixelMap) {
	for sy, row := range src {
		dy := y + sy
		if dy < 0 || dy >= len(m) {
			continue
		}
		for sx, v := range row {
			dx := x + sx
			if dx < 0 || dx >= len(m[dy]) {
				continue
			}
			m[dy][dx] = v
		}
	}
}

// ColorModel returns BitModel.
func (m PixelMap) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the map bounds, anchored at the origin.
func (m PixelMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width(), m.Height())
}

// At returns the Bit at (x, y), Off when outside the map.
func (m PixelMap) At(x, y int) color.Color {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return Off
	}
	return Bit(m[y][x])
}

// Set sets the pixel at (x, y) from c.
func (m PixelMap) Set(x, y int, c color.Color) {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return
	}
	m[y][x] = bool(BitModel.Convert(c).(Bit))
}

// String renders m as rows of '#' and '.', handy in test failures.
func (m PixelMap) String() string {
	buf := make([]byte, 0, (m.Width()+1)*m.Height())
	for _, row := range m {
		for _, v := range row {
			if v {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
