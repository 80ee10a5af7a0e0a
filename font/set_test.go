package font

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSet(t *testing.T) *Set {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestClassSize(t *testing.T) {
	tests := []struct {
		class Class
		w, h  int
		name  string
	}{
		{Text, 8, 16, "text"},
		{Numeral, 25, 35, "numeral"},
		{Class(7), 0, 0, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.class.Size()
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.name, tt.class.String())
		})
	}
}

func TestGlyphForDimensions(t *testing.T) {
	s := newSet(t)

	for _, tt := range []struct {
		r     rune
		class Class
	}{
		{'A', Text},
		{'°', Text},
		{' ', Text},
		{'7', Numeral},
		{' ', Numeral},
		{'.', Numeral},
		{'-', Numeral},
	} {
		m, err := s.GlyphFor(tt.r, tt.class)
		require.NoError(t, err, "%q %s", tt.r, tt.class)
		require.NoError(t, m.Validate())
		w, h := tt.class.Size()
		assert.Equal(t, w, m.Width(), "%q %s", tt.r, tt.class)
		assert.Equal(t, h, m.Height(), "%q %s", tt.r, tt.class)
	}
}

func TestUndefinedGlyph(t *testing.T) {
	s := newSet(t)

	_, err := s.GlyphFor('A', Numeral)
	assert.ErrorIs(t, err, ErrUndefined)

	_, err = s.GlyphFor('\n', Text)
	assert.ErrorIs(t, err, ErrUndefined)

	_, err = s.GlyphFor('\U0001F600', Text)
	assert.ErrorIs(t, err, ErrUndefined)

	_, err = s.GlyphFor('1', Class(9))
	assert.Error(t, err)
}

func TestSpaceIsBlank(t *testing.T) {
	s := newSet(t)

	tg, err := s.Text(' ')
	require.NoError(t, err)
	assert.Equal(t, TextGlyph{}, tg)

	ng, err := s.Numeral(' ')
	require.NoError(t, err)
	assert.Equal(t, NumeralGlyph{}, ng)
}

func TestNumeralPunctuation(t *testing.T) {
	s := newSet(t)

	dot, err := s.Numeral('.')
	require.NoError(t, err)
	minus, err := s.Numeral('-')
	require.NoError(t, err)

	assert.NotEqual(t, NumeralGlyph{}, dot)
	assert.NotEqual(t, NumeralGlyph{}, minus)
	assert.NotEqual(t, dot, minus)
}

func TestDigitsAreDistinct(t *testing.T) {
	s := newSet(t)

	seen := map[NumeralGlyph]rune{}
	for r := '0'; r <= '9'; r++ {
		g, err := s.Numeral(r)
		require.NoError(t, err)
		assert.NotEqual(t, NumeralGlyph{}, g, "digit %q is blank", r)
		if prev, ok := seen[g]; ok {
			t.Errorf("digit %q renders like %q", r, prev)
		}
		seen[g] = r

		for y, row := range g {
			assert.Zero(t, row>>NumeralWidth, "digit %q row %d spills past the cell", r, y)
		}
	}
}

func TestGlyphColumnsFromRight(t *testing.T) {
	s := newSet(t)

	// 'L' has its stem on the left, so most of its ink lands in the high
	// (leftmost) columns.
	g, err := s.Text('L')
	require.NoError(t, err)

	var left, right int
	for _, row := range g {
		left += bits.OnesCount8(row & 0xF0)
		right += bits.OnesCount8(row & 0x0F)
	}
	assert.Greater(t, left, right)
}

func TestGlyphCache(t *testing.T) {
	s := newSet(t)

	a, err := s.Numeral('5')
	require.NoError(t, err)
	assert.Equal(t, 1, s.numeralCache.Len())

	b, err := s.Numeral('5')
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, s.numeralCache.Len())
}

func TestGlyphMap(t *testing.T) {
	var g TextGlyph
	g[3] = 0x81

	m := g.Map()
	assert.True(t, m[3][0])
	assert.True(t, m[3][7])
	assert.False(t, m[3][1])
	assert.True(t, g.Bit(3, 7))

	var n NumeralGlyph
	n[34] = 1 << 24
	nm := n.Map()
	assert.True(t, nm[34][24])
	assert.False(t, nm[34][0])
}
