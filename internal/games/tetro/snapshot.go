package tetro

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Steps      uint64
	State      StateType
	Score      int
	Lives      int
	Filled     int // Occupied field cells
	PieceKind  ShapeKind
	PieceShape string
	PieceX     int
	PieceY     int
	PieceColor Cell
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Steps:      g.steps,
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives,
		Filled:     g.grid.Filled(),
		PieceKind:  g.piece.Kind,
		PieceShape: g.piece.Shape.String(),
		PieceX:     g.piece.X,
		PieceY:     g.piece.Y,
		PieceColor: g.piece.Color,
	}
}
