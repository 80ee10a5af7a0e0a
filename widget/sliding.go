// Package widget synthesizes composite pixel maps for the display.
//
// SlidingValue draws a number the way a mechanical odometer does: the units
// wheel turns continuously with the fractional part, and a wheel further to
// the left only moves while every wheel to its right shows 9.
package widget

import (
	"fmt"
	"math"

	"github.com/kcgauge/ssd1306/font"
	"github.com/kcgauge/ssd1306/image1bit"
)

// MaxValue is the largest whole value SlidingValue renders; larger values
// are clamped.
const MaxValue = 999999999

// NumeralSource returns numeral glyphs.
type NumeralSource interface {
	Numeral(r rune) (font.NumeralGlyph, error)
}

// Digits is the per-frame state of the odometer.
type Digits struct {
	Whole  int // integer part of the value
	Count  int // number of digit positions, at least 1
	Offset int // scroll of the units wheel in numeral rows, [0, NumeralHeight)
}

// Split computes the odometer state for value. Negative and NaN values
// render as 0.
func Split(value float64) Digits {
	if math.IsNaN(value) || value < 0 {
		value = 0
	}
	if value > MaxValue {
		value = MaxValue
	}

	whole := math.Floor(value)
	offset := int(math.Round((value - whole) * font.NumeralHeight))
	if offset >= font.NumeralHeight {
		offset = font.NumeralHeight - 1
	}

	// The count is taken from the ceiling so the digit about to appear on
	// the left has a wheel to scroll into.
	count := 1
	for n := int(math.Ceil(value)); n >= 10; n /= 10 {
		count++
	}
	return Digits{Whole: int(whole), Count: count, Offset: offset}
}

// BlendDigit returns the glyph seen through the window of a wheel scrolled
// offset rows past current: current moves up and out while next enters from
// below.
func BlendDigit(current, next font.NumeralGlyph, offset int) font.NumeralGlyph {
	if offset <= 0 {
		return current
	}
	if offset >= font.NumeralHeight {
		return next
	}
	var out font.NumeralGlyph
	n := copy(out[:], current[offset:])
	copy(out[n:], next[:offset])
	return out
}

// SlidingValue renders value as a NumeralHeight x Count*NumeralWidth map in
// screen orientation.
func SlidingValue(src NumeralSource, value float64) (image1bit.PixelMap, error) {
	d := Split(value)
	m := image1bit.NewPixelMap(d.Count*font.NumeralWidth, font.NumeralHeight)

	whole, offset := d.Whole, d.Offset
	for i := d.Count - 1; i >= 0; i, whole = i-1, whole/10 {
		digit := whole % 10

		r := rune('0' + digit)
		if i == 0 && d.Whole != 0 && digit == 0 {
			r = ' '
		}
		g, err := src.Numeral(r)
		if err != nil {
			return nil, fmt.Errorf("widget: digit %d: %w", i, err)
		}
		if offset > 0 {
			next, err := src.Numeral(rune('0' + (digit+1)%10))
			if err != nil {
				return nil, fmt.Errorf("widget: digit %d: %w", i, err)
			}
			g = BlendDigit(g, next, offset)
		}
		place(m, i*font.NumeralWidth, g)

		if digit != 9 {
			offset = 0
		}
	}
	return m, nil
}

// place copies g into m at column x0, undoing the right-to-left column
// numbering of glyphs.
func place(m image1bit.PixelMap, x0 int, g font.NumeralGlyph) {
	for y := range g {
		for x := 0; x < font.NumeralWidth; x++ {
			m[y][x0+x] = g.Bit(y, font.NumeralWidth-1-x)
		}
	}
}
