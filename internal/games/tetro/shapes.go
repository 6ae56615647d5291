package tetro

import (
	"math/rand"
	"strings"
)

// Shape is one rotation state of a piece: a row-major occupancy matrix.
// Shapes are treated as immutable; Rotated returns a new matrix.
type Shape [][]bool

// ShapeKind identifies one of the seven canonical polyominoes.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// ShapeCount is the number of canonical shapes.
const ShapeCount = 7

// catalog holds the base orientation of every shape, '#' marks a block.
var catalog = [ShapeCount][]string{
	ShapeI: {"####"},
	ShapeO: {"##", "##"},
	ShapeT: {".#.", "###"},
	ShapeL: {"#..", "###"},
	ShapeJ: {"..#", "###"},
	ShapeS: {"##.", ".##"},
	ShapeZ: {".##", "##."},
}

// parseShape converts a layout into a Shape.
func parseShape(layout []string) Shape {
	s := make(Shape, len(layout))
	for r, row := range layout {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// String returns the single-letter name of the shape.
func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape returns a fresh copy of the kind's base orientation.
func (k ShapeKind) Shape() Shape {
	if k < 0 || k >= ShapeCount {
		return nil
	}
	return parseShape(catalog[k])
}

// AllShapes returns the seven canonical shapes in catalog order.
func AllShapes() []Shape {
	shapes := make([]Shape, 0, ShapeCount)
	for k := ShapeKind(0); k < ShapeCount; k++ {
		shapes = append(shapes, k.Shape())
	}
	return shapes
}

// RandomKind picks a shape uniformly at random, with replacement.
func RandomKind(rng *rand.Rand) ShapeKind {
	return ShapeKind(rng.Intn(ShapeCount))
}

// RandomShape picks a canonical shape uniformly at random.
func RandomShape(rng *rand.Rand) Shape {
	return RandomKind(rng).Shape()
}

// RandomColor picks a color tag uniformly from 1..7, independent of the shape.
func RandomColor(rng *rand.Rand) Cell {
	return Cell(1 + rng.Intn(MaxColor))
}

// Rows returns the number of rows in the matrix.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the number of columns in the matrix.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Equal reports whether two shapes match cell for cell.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the shape in the same '#'/'.' layout used by the catalog.
func (s Shape) String() string {
	rows := make([]string, len(s))
	for r, row := range s {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "/")
}

// Rotated returns the shape turned 90 degrees clockwise.
// Row order is reversed and the result transposed, so an r x c matrix
// becomes c x r. The input is not modified.
func Rotated(s Shape) Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range out {
		out[i] = make([]bool, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}
