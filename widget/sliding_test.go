package widget

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcgauge/ssd1306/font"
	"github.com/kcgauge/ssd1306/image1bit"
)

// stubNumerals returns glyphs whose rows encode the rune and the row index,
// so any blend can be traced back to its source rows.
type stubNumerals struct {
	fail rune
}

func code(r rune) uint32 {
	if r == ' ' {
		return 0
	}
	return uint32(r-'0') + 1
}

func stubGlyph(r rune) font.NumeralGlyph {
	var g font.NumeralGlyph
	for y := range g {
		g[y] = code(r)<<8 | uint32(y)
	}
	return g
}

func (s stubNumerals) Numeral(r rune) (font.NumeralGlyph, error) {
	if r == s.fail {
		return font.NumeralGlyph{}, font.ErrUndefined
	}
	if r != ' ' && (r < '0' || r > '9') {
		return font.NumeralGlyph{}, font.ErrUndefined
	}
	return stubGlyph(r), nil
}

// glyphAt reads back the glyph placed at digit position i.
func glyphAt(m image1bit.PixelMap, i int) font.NumeralGlyph {
	var g font.NumeralGlyph
	for y := range g {
		for c := 0; c < font.NumeralWidth; c++ {
			if m[y][i*font.NumeralWidth+font.NumeralWidth-1-c] {
				g[y] |= 1 << uint(c)
			}
		}
	}
	return g
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Digits
	}{
		{"zero", 0, Digits{Whole: 0, Count: 1, Offset: 0}},
		{"half", 0.5, Digits{Whole: 0, Count: 1, Offset: 18}},
		{"twelve", 12.0, Digits{Whole: 12, Count: 2, Offset: 0}},
		{"nine and a half", 9.5, Digits{Whole: 9, Count: 2, Offset: 18}},
		{"exact ten", 10, Digits{Whole: 10, Count: 2, Offset: 0}},
		{"almost a hundred", 99.9, Digits{Whole: 99, Count: 3, Offset: 32}},
		{"offset never reaches height", 3.99, Digits{Whole: 3, Count: 1, Offset: 34}},
		{"negative", -4.2, Digits{Whole: 0, Count: 1, Offset: 0}},
		{"nan", math.NaN(), Digits{Whole: 0, Count: 1, Offset: 0}},
		{"huge", 1e12, Digits{Whole: MaxValue, Count: 9, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.value))
		})
	}
}

func TestBlendDigit(t *testing.T) {
	cur, next := stubGlyph('9'), stubGlyph('0')

	assert.Equal(t, cur, BlendDigit(cur, next, 0))
	assert.Equal(t, next, BlendDigit(cur, next, font.NumeralHeight))

	got := BlendDigit(cur, next, 18)
	for y := 0; y < 17; y++ {
		assert.Equal(t, cur[y+18], got[y], "row %d", y)
	}
	for y := 17; y < font.NumeralHeight; y++ {
		assert.Equal(t, next[y-17], got[y], "row %d", y)
	}
}

func TestBlendDigitIsContinuous(t *testing.T) {
	cur, next := stubGlyph('4'), stubGlyph('5')

	// Each extra row of scroll shifts the window by exactly one row.
	for offset := 1; offset < font.NumeralHeight; offset++ {
		prev := BlendDigit(cur, next, offset-1)
		got := BlendDigit(cur, next, offset)
		for y := 0; y < font.NumeralHeight-1; y++ {
			require.Equal(t, prev[y+1], got[y], "offset %d row %d", offset, y)
		}
	}
}

func TestSlidingValueUnblended(t *testing.T) {
	m, err := SlidingValue(stubNumerals{}, 12.0)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 2*font.NumeralWidth, m.Width())
	assert.Equal(t, font.NumeralHeight, m.Height())

	assert.Equal(t, stubGlyph('1'), glyphAt(m, 0))
	assert.Equal(t, stubGlyph('2'), glyphAt(m, 1))
}

func TestSlidingValueZero(t *testing.T) {
	m, err := SlidingValue(stubNumerals{}, 0)
	require.NoError(t, err)
	assert.Equal(t, font.NumeralWidth, m.Width())
	assert.Equal(t, stubGlyph('0'), glyphAt(m, 0))
}

func TestSlidingValueRollover(t *testing.T) {
	m, err := SlidingValue(stubNumerals{}, 9.5)
	require.NoError(t, err)
	require.Equal(t, 2*font.NumeralWidth, m.Width())

	// The units wheel turns from 9 to 0 and, because it shows 9, the blank
	// tens wheel turns to 1 with it.
	assert.Equal(t, BlendDigit(stubGlyph('9'), stubGlyph('0'), 18), glyphAt(m, 1))
	assert.Equal(t, BlendDigit(stubGlyph(' '), stubGlyph('1'), 18), glyphAt(m, 0))
}

func TestSlidingValueCarryStops(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  []font.NumeralGlyph
	}{
		{
			"only units move",
			12.5,
			[]font.NumeralGlyph{
				stubGlyph('1'),
				BlendDigit(stubGlyph('2'), stubGlyph('3'), 18),
			},
		},
		{
			"tens move behind a 9",
			19.5,
			[]font.NumeralGlyph{
				BlendDigit(stubGlyph('1'), stubGlyph('2'), 18),
				BlendDigit(stubGlyph('9'), stubGlyph('0'), 18),
			},
		},
		{
			"carry stops at a zero",
			109.5,
			[]font.NumeralGlyph{
				stubGlyph('1'),
				BlendDigit(stubGlyph('0'), stubGlyph('1'), 18),
				BlendDigit(stubGlyph('9'), stubGlyph('0'), 18),
			},
		},
		{
			"inner zero is not suppressed",
			105,
			[]font.NumeralGlyph{
				stubGlyph('1'),
				stubGlyph('0'),
				stubGlyph('5'),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := SlidingValue(stubNumerals{}, tt.value)
			require.NoError(t, err)
			require.Equal(t, len(tt.want)*font.NumeralWidth, m.Width())
			for i, want := range tt.want {
				assert.Equal(t, want, glyphAt(m, i), "position %d", i)
			}
		})
	}
}

func TestSlidingValueGlyphError(t *testing.T) {
	_, err := SlidingValue(stubNumerals{fail: '3'}, 13)
	assert.True(t, errors.Is(err, font.ErrUndefined))

	// The next digit is only fetched while scrolling.
	_, err = SlidingValue(stubNumerals{fail: '3'}, 2.5)
	assert.ErrorIs(t, err, font.ErrUndefined)

	_, err = SlidingValue(stubNumerals{fail: '3'}, 2)
	assert.NoError(t, err)
}

func TestSlidingValueRealFont(t *testing.T) {
	set, err := font.New()
	require.NoError(t, err)

	for _, v := range []float64{0, 7.25, 9.99, 42, 123.5} {
		m, err := SlidingValue(set, v)
		require.NoError(t, err, "value %v", v)
		require.NoError(t, m.Validate())
		assert.Equal(t, Split(v).Count*font.NumeralWidth, m.Width())
	}
}
