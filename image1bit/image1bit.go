// Package image1bit provides monochrome image formats optimized for the SSD1306 display.
//
// Pixels are stored one bit each, packed 8 rows per byte, columns contiguous.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel: On (lit) or Off.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA, On being white.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luminance weights as the grayscale conversion in image/color.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// PageHeight is the number of pixel rows packed in one byte.
const PageHeight = 8

// VerticalLSB is a monochrome image where each byte holds 8 vertical pixels,
// the least significant bit being the top one. Columns are stored
// contiguously: the byte for column x and page p is Pix[x*Stride+p].
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per column (pages)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%PageHeight != 0 {
		panic("image1bit: height must be a multiple of 8")
	}

	stride := h / PageHeight
	return &VerticalLSB{
		Pix:    make([]byte, w*stride),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.PixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// Only the addressed bit changes, the 7 other pixels sharing the byte are
// left untouched.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.PixOffset(x, y)
	p.Pix[offset] &^= mask
	if b {
		p.Pix[offset] |= mask
	}
}

// PixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) PixOffset(x, y int) (offset int, mask byte) {
	dy := y - p.Rect.Min.Y
	offset = (x-p.Rect.Min.X)*p.Stride + dy/PageHeight
	mask = 1 << uint(dy%PageHeight)
	return
}

// Cell returns the byte at column x (relative to Rect.Min.X) and page.
func (p *VerticalLSB) Cell(x, page int) byte {
	return p.Pix[x*p.Stride+page]
}

// SetCell sets the byte at column x (relative to Rect.Min.X) and page.
func (p *VerticalLSB) SetCell(x, page int, v byte) {
	p.Pix[x*p.Stride+page] = v
}

// Fill sets every byte of the image to v.
func (p *VerticalLSB) Fill(v byte) {
	for i := range p.Pix {
		p.Pix[i] = v
	}
}
