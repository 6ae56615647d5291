package tetro

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllShapes(t *testing.T) {
	shapes := AllShapes()
	require.Len(t, shapes, ShapeCount)

	for i, s := range shapes {
		require.NotZero(t, s.Rows(), "shape %d has no rows", i)
		blocks := 0
		for _, row := range s {
			assert.Len(t, row, s.Cols(), "shape %d is not rectangular", i)
			for _, filled := range row {
				if filled {
					blocks++
				}
			}
		}
		assert.Equal(t, 4, blocks, "shape %s should have four blocks", ShapeKind(i))
	}
}

func TestShapeKindLayouts(t *testing.T) {
	tests := []struct {
		kind     ShapeKind
		expected string
	}{
		{ShapeI, "####"},
		{ShapeO, "##/##"},
		{ShapeT, ".#./###"},
		{ShapeL, "#../###"},
		{ShapeJ, "..#/###"},
		{ShapeS, "##./.##"},
		{ShapeZ, ".##/##."},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.Shape().String())
		})
	}
}

func TestShapeCopiesAreIndependent(t *testing.T) {
	a := ShapeT.Shape()
	a[0][0] = true

	assert.False(t, ShapeT.Shape()[0][0], "mutating a copy must not touch the catalog")
	assert.Nil(t, ShapeKind(42).Shape())
}

func TestRotatedNonSquare(t *testing.T) {
	rotated := Rotated(ShapeT.Shape())

	assert.Equal(t, 3, rotated.Rows())
	assert.Equal(t, 2, rotated.Cols())
	assert.Equal(t, "#./##/#.", rotated.String())

	// I goes from one row to one column
	i := Rotated(ShapeI.Shape())
	assert.Equal(t, "#/#/#/#", i.String())
}

func TestRotatedDoesNotMutate(t *testing.T) {
	s := ShapeL.Shape()
	before := s.String()
	_ = Rotated(s)
	assert.Equal(t, before, s.String())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range AllShapes() {
		r := s
		for range 4 {
			r = Rotated(r)
		}
		assert.True(t, r.Equal(s), "four rotations of %s gave %s", s, r)
	}
}

func TestRandomSelectionsCoverRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := make(map[ShapeKind]int)
	colors := make(map[Cell]int)

	for range 2000 {
		kinds[RandomKind(rng)]++
		c := RandomColor(rng)
		require.GreaterOrEqual(t, c, Cell(1))
		require.LessOrEqual(t, c, Cell(MaxColor))
		colors[c]++
	}

	assert.Len(t, kinds, ShapeCount)
	assert.Len(t, colors, MaxColor)
	assert.NotEmpty(t, RandomShape(rng))
}

func TestSpawnPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Spawn(rng, ShapeO, 11)

	assert.Equal(t, 5, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, ShapeO, p.Kind)
	assert.True(t, p.Shape.Equal(ShapeO.Shape()))
	assert.NotEqual(t, Empty, p.Color)
}
