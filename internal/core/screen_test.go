package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blank reports whether every cell is an uncolored space.
func blank(s *Screen) bool {
	for y := range s.Height() {
		for x := range s.Width() {
			if s.GetCell(x, y) != (Cell{Rune: ' '}) {
				return false
			}
		}
	}
	return true
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	assert.True(t, blank(s), "new screen should hold uncolored spaces")
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.Set(p[0], p[1], 'A')
		assert.Equal(t, ' ', s.Get(p[0], p[1]), "out of bounds read at %v", p)
	}
	assert.Equal(t, 1, strings.Count(s.String(), "X"))
	assert.NotContains(t, s.String(), "A")
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '█', ColorCyan)

	assert.Equal(t, Cell{Rune: '█', Color: ColorCyan}, s.GetCell(1, 2))

	// Plain Set resets the color
	s.Set(1, 2, 'x')
	assert.Equal(t, ColorDefault, s.GetCell(1, 2).Color)
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	for y := range 3 {
		s.DrawTextColored(0, y, "XXXXXX", ColorRed)
	}

	s.Clear()
	assert.True(t, blank(s))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.Equal(t, "  Hello             ", s.Row(1))

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, "He", s.Row(0)[18:])
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "██ok", ColorGreen)

	// Multi-byte runes occupy one cell each
	assert.Equal(t, '█', s.Get(1, 0))
	assert.Equal(t, 'o', s.Get(2, 0))
	assert.Equal(t, ColorGreen, s.GetCell(3, 0).Color)
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		text  string
		wantX int
	}{
		{"even in even", NewRect(0, 0, 20, 5), "Hi", 9},
		{"odd in even", NewRect(0, 0, 20, 5), "abc", 8},
		{"offset rect", NewRect(4, 0, 10, 5), "ab", 8},
		{"multibyte", NewRect(0, 0, 10, 5), "██", 4},
		{"wider than rect", NewRect(2, 0, 4, 5), "abcdef", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(20, 5)
			s.DrawTextCentered(tc.r, 2, tc.text, ColorRed)

			assert.Equal(t, []rune(tc.text)[0], s.Get(tc.wantX, 2))
			assert.Equal(t, ColorRed, s.GetCell(tc.wantX, 2).Color)
			if tc.wantX > 0 {
				assert.Equal(t, ' ', s.Get(tc.wantX-1, 2))
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Smaller keeps the top-left content
	s.Resize(8, 4)
	require.Equal(t, 8, s.Width())
	require.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))
	assert.NotContains(t, s.String(), "World")

	// Larger leaves the new area blank
	s.Resize(12, 6)
	assert.Equal(t, ' ', s.Get(11, 5))
	assert.Len(t, s.Row(5), 12)
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	assert.Equal(t, "Test      ", s.Row(2))
	assert.Equal(t, "          ", s.Row(-1))
	assert.Equal(t, "          ", s.Row(5))
}
