// Package font provides the two fixed-width glyph classes used by the display:
// a compact 8x16 text font and a large 25x35 numeral font.
//
// Glyphs are stored as packed rows where bit c of a row is glyph column c.
// Columns are numbered from the right edge of the glyph: the controller is
// configured with its segments remapped, so the compositor places glyph
// column c at screen column origin+width-1-c.
package font

import (
	"errors"

	"github.com/kcgauge/ssd1306/image1bit"
)

// Class selects a font.
type Class int

const (
	// Text is the compact font used for labels.
	Text Class = iota
	// Numeral is the large font used by the value widget.
	Numeral
)

// Glyph dimensions in pixels.
const (
	TextWidth     = 8
	TextHeight    = 16
	NumeralWidth  = 25
	NumeralHeight = 35
)

// ErrUndefined is returned when a font has no glyph for a character.
var ErrUndefined = errors.New("font: undefined character")

// Size returns the fixed glyph width and height of the class.
func (c Class) Size() (w, h int) {
	switch c {
	case Text:
		return TextWidth, TextHeight
	case Numeral:
		return NumeralWidth, NumeralHeight
	}
	return 0, 0
}

func (c Class) String() string {
	switch c {
	case Text:
		return "text"
	case Numeral:
		return "numeral"
	}
	return "unknown"
}

// Provider returns the glyph of a character as a pixel map with columns
// numbered from the right edge.
type Provider interface {
	GlyphFor(r rune, c Class) (image1bit.PixelMap, error)
}

// TextGlyph is a glyph of the Text class.
type TextGlyph [TextHeight]uint8

// Bit reports whether the pixel at row, col is on.
func (g TextGlyph) Bit(row, col int) bool {
	return g[row]>>uint(col)&1 != 0
}

// Map returns the glyph as a TextHeight x TextWidth pixel map.
func (g TextGlyph) Map() image1bit.PixelMap {
	m := image1bit.NewPixelMap(TextWidth, TextHeight)
	for y := range m {
		for x := range m[y] {
			m[y][x] = g.Bit(y, x)
		}
	}
	return m
}

// NumeralGlyph is a glyph of the Numeral class.
type NumeralGlyph [NumeralHeight]uint32

// Bit reports whether the pixel at row, col is on.
func (g NumeralGlyph) Bit(row, col int) bool {
	return g[row]>>uint(col)&1 != 0
}

// Map returns the glyph as a NumeralHeight x NumeralWidth pixel map.
func (g NumeralGlyph) Map() image1bit.PixelMap {
	m := image1bit.NewPixelMap(NumeralWidth, NumeralHeight)
	for y := range m {
		for x := range m[y] {
			m[y][x] = g.Bit(y, x)
		}
	}
	return m
}
