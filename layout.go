package ssd1306

import (
	"fmt"

	"github.com/kcgauge/ssd1306/font"
	"github.com/kcgauge/ssd1306/image1bit"
	"github.com/kcgauge/ssd1306/widget"
)

// Align selects which edge of the text is anchored at the x coordinate.
type Align int

const (
	// AlignLeft anchors the left edge of the first character at x.
	AlignLeft Align = iota
	// AlignRight anchors the right edge of the last character at x, that
	// is the last character covers columns x-width+1 to x.
	AlignRight
)

// Print draws text into the pending frame using the fixed width font class.
//
// Every glyph is looked up before anything is drawn: if one character is
// undefined the error wraps font.ErrUndefined and the frame is unchanged.
func (d *Dev) Print(x, y int, text string, class font.Class, align Align) error {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	maps := make([]image1bit.PixelMap, len(runes))
	for i, r := range runes {
		m, err := d.glyphs.GlyphFor(r, class)
		if err != nil {
			return fmt.Errorf("ssd1306: print %q: %w", text, err)
		}
		// Glyph columns are numbered from the right edge.
		maps[i] = m.Mirror()
	}

	w, _ := class.Size()
	if align == AlignRight {
		ox := x - w + 1
		for i := len(maps) - 1; i >= 0; i-- {
			d.DrawMap(ox, y, maps[i])
			ox -= w
		}
		return nil
	}
	for i, m := range maps {
		d.DrawMap(x+i*w, y, m)
	}
	return nil
}

// DrawValue draws value with the odometer widget into the pending frame.
func (d *Dev) DrawValue(x, y int, value float64, align Align) error {
	m, err := widget.SlidingValue(d.glyphs, value)
	if err != nil {
		return fmt.Errorf("ssd1306: value %v: %w", value, err)
	}
	if align == AlignRight {
		x -= m.Width() - 1
	}
	d.DrawMap(x, y, m)
	return nil
}
