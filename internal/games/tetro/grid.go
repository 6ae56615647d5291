package tetro

// Cell is a single field position: 0 is empty, 1..7 is the color tag of the
// piece that filled it. Tags carry no shape information.
type Cell uint8

const (
	// Empty marks an unoccupied cell.
	Empty Cell = 0
	// MaxColor is the largest color tag.
	MaxColor = 7
)

// Grid is the fixed-size play field.
// Rows are indexed top to bottom; the row count never changes.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at (x, y). Out-of-bounds positions read as Empty.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Empty
	}
	return g.cells[y][x]
}

// Set writes a cell. Out-of-bounds positions are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = c
}

// Collides reports whether the piece, shifted by (dx, dy) and drawn with the
// candidate shape (the piece's own shape when nil), would leave the field or
// overlap settled cells. Cells above the top edge are only checked against
// the side walls.
//
// Every movement, rotation and gravity step goes through this check.
func (g *Grid) Collides(p Piece, dx, dy int, candidate Shape) bool {
	shape := candidate
	if shape == nil {
		shape = p.Shape
	}

	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			nx := p.X + c + dx
			ny := p.Y + r + dy
			if ny >= g.height || nx < 0 || nx >= g.width {
				return true
			}
			if ny >= 0 && g.cells[ny][nx] != Empty {
				return true
			}
		}
	}
	return false
}

// Freeze writes the piece's color into every cell it occupies.
// Cells above the top edge cannot be stored and are dropped.
func (g *Grid) Freeze(p Piece) {
	p.Cells(func(x, y int) {
		g.Set(x, y, p.Color)
	})
}

// ClearLines removes every full row, shifts the rows above it down and
// inserts empty rows at the top. Returns the number of rows removed.
func (g *Grid) ClearLines() int {
	kept := make([][]Cell, 0, g.height)
	var removed [][]Cell

	for _, row := range g.cells {
		if isFull(row) {
			removed = append(removed, row)
			continue
		}
		kept = append(kept, row)
	}

	if len(removed) == 0 {
		return 0
	}

	// Recycle the removed rows as the new empty rows on top
	for _, row := range removed {
		clear(row)
	}
	g.cells = append(removed, kept...)
	return len(removed)
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for _, row := range g.cells {
		clear(row)
	}
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.width, g.height)
	for y, row := range g.cells {
		copy(out.cells[y], row)
	}
	return out
}

// Equal reports whether two grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}
