package tetro

import "math/rand"

// Piece is the falling polyomino under player control.
// (X, Y) is the grid position of the shape's top-left corner.
type Piece struct {
	Kind  ShapeKind
	Shape Shape
	X, Y  int
	Color Cell
}

// Spawn creates a piece of the given kind at the top-middle of a grid
// of the given width, with a freshly chosen color.
func Spawn(rng *rand.Rand, kind ShapeKind, gridWidth int) Piece {
	return Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		X:     gridWidth / 2,
		Y:     0,
		Color: RandomColor(rng),
	}
}

// Cells calls fn with the absolute grid position of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled {
				fn(p.X+c, p.Y+r)
			}
		}
	}
}
