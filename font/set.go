package font

import (
	"fmt"
	"image"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/kcgauge/ssd1306/image1bit"
)

const (
	textSize    = 13
	numeralSize = 40
	cacheSize   = 128

	numeralRunes = "0123456789 .-"
)

// Set rasterizes glyphs from the Go Mono typefaces and keeps the most
// recently used ones.
//
// A Set is not safe for concurrent use.
type Set struct {
	text    *face
	numeral *face

	textCache    *lru.Cache[rune, TextGlyph]
	numeralCache *lru.Cache[rune, NumeralGlyph]
}

// New parses the typefaces and returns a ready to use Set.
func New() (*Set, error) {
	text, err := newFace(gomono.TTF, textSize, TextWidth, TextHeight, "", unicode.IsPrint)
	if err != nil {
		return nil, fmt.Errorf("font: text face: %w", err)
	}
	numeral, err := newFace(gomonobold.TTF, numeralSize, NumeralWidth, NumeralHeight, "0123456789", func(r rune) bool {
		return strings.ContainsRune(numeralRunes, r)
	})
	if err != nil {
		return nil, fmt.Errorf("font: numeral face: %w", err)
	}

	s := &Set{text: text, numeral: numeral}
	if s.textCache, err = lru.New[rune, TextGlyph](cacheSize); err != nil {
		return nil, err
	}
	if s.numeralCache, err = lru.New[rune, NumeralGlyph](cacheSize); err != nil {
		return nil, err
	}
	return s, nil
}

// Text returns the Text glyph for r.
func (s *Set) Text(r rune) (TextGlyph, error) {
	if g, ok := s.textCache.Get(r); ok {
		return g, nil
	}
	rows, err := s.text.raster(r)
	if err != nil {
		return TextGlyph{}, fmt.Errorf("%w: %q (%s)", err, r, Text)
	}
	var g TextGlyph
	for y, row := range rows {
		g[y] = uint8(row)
	}
	s.textCache.Add(r, g)
	return g, nil
}

// Numeral returns the Numeral glyph for r. Only digits, space, '.' and '-'
// are defined.
func (s *Set) Numeral(r rune) (NumeralGlyph, error) {
	if g, ok := s.numeralCache.Get(r); ok {
		return g, nil
	}
	rows, err := s.numeral.raster(r)
	if err != nil {
		return NumeralGlyph{}, fmt.Errorf("%w: %q (%s)", err, r, Numeral)
	}
	var g NumeralGlyph
	copy(g[:], rows)
	s.numeralCache.Add(r, g)
	return g, nil
}

// GlyphFor implements Provider.
func (s *Set) GlyphFor(r rune, c Class) (image1bit.PixelMap, error) {
	switch c {
	case Text:
		g, err := s.Text(r)
		if err != nil {
			return nil, err
		}
		return g.Map(), nil
	case Numeral:
		g, err := s.Numeral(r)
		if err != nil {
			return nil, err
		}
		return g.Map(), nil
	}
	return nil, fmt.Errorf("font: unknown class %d", int(c))
}

// face renders single runes into a fixed w x h cell.
type face struct {
	font   *opentype.Font
	face   xfont.Face
	buf    sfnt.Buffer
	w, h   int
	dot    fixed.Point26_6
	accept func(rune) bool
}

// newFace loads ttf at size pixels. When ref is not empty, the cell is
// vertically centered on the ink bounds of ref, otherwise on the line
// metrics.
func newFace(ttf []byte, size float64, w, h int, ref string, accept func(rune) bool) (*face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	xf, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	adv, _ := xf.GlyphAdvance('0')
	x := (fixed.I(w) - adv) / 2
	if x < 0 {
		x = 0
	}

	var y fixed.Int26_6
	if ref != "" {
		b, _ := xfont.BoundString(xf, ref)
		y = (fixed.I(h)-(b.Max.Y-b.Min.Y))/2 - b.Min.Y
	} else {
		m := xf.Metrics()
		y = (fixed.I(h)-m.Ascent-m.Descent)/2 + m.Ascent
	}

	return &face{
		font:   f,
		face:   xf,
		w:      w,
		h:      h,
		dot:    fixed.Point26_6{X: fixed.I(x.Round()), Y: fixed.I(y.Round())},
		accept: accept,
	}, nil
}

// raster returns h packed rows, bit w-1-x holding the pixel drawn at x.
func (f *face) raster(r rune) ([]uint32, error) {
	if !f.accept(r) {
		return nil, ErrUndefined
	}
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return nil, ErrUndefined
	}

	dst := image.NewAlpha(image.Rect(0, 0, f.w, f.h))
	d := xfont.Drawer{Dst: dst, Src: image.Opaque, Face: f.face, Dot: f.dot}
	d.DrawString(string(r))

	rows := make([]uint32, f.h)
	for y := range rows {
		for x := 0; x < f.w; x++ {
			if dst.AlphaAt(x, y).A >= 0x80 {
				rows[y] |= 1 << uint(f.w-1-x)
			}
		}
	}
	return rows, nil
}
