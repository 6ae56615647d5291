// Package tetro implements the falling-block puzzle engine: the shape
// catalog, the active piece, the play field and the tick state machine.
// It has no terminal dependencies; the platform layer feeds it actions and
// wall-clock samples and draws it through core.Screen.
package tetro

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tetro/internal/config"
	"github.com/vovakirdan/tetro/internal/core"
)

// StateType is the engine's top-level state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Screen space reserved around the field when sizing it from the terminal.
const (
	reservedCols = 10
	reservedRows = 5
)

// Game owns the field, the active piece, score and lives.
type Game struct {
	cfg   config.Config
	rng   *rand.Rand
	steps uint64

	grid  *Grid
	piece Piece
	score int
	lives int
	state StateType

	// lastGravity is the wall-clock time of the last gravity step.
	// Zero until the first Step after Reset.
	lastGravity time.Time
}

// New creates a game with the given configuration.
// Call Reset before the first Step.
func New(cfg config.Config) *Game {
	cfg.Validate()
	return &Game{cfg: cfg}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetro CLI"
}

// FieldSize derives the play field dimensions from the terminal size.
// Each field cell is two characters wide.
func FieldSize(cols, rows int) (width, height int) {
	width = max(1, (cols-reservedCols)/2)
	height = max(1, rows-reservedRows)
	return width, height
}

// Reset starts a new game sized for the given screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.steps = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.state = StatePlaying
	g.lastGravity = time.Time{}

	w, h := FieldSize(cfg.ScreenW, cfg.ScreenH)
	g.grid = NewGrid(w, h)
	g.spawn()
}

// spawn replaces the active piece with a new random one.
func (g *Game) spawn() {
	g.piece = Spawn(g.rng, RandomKind(g.rng), g.grid.Width())
}

// Step advances the game by one poll tick.
// The action is applied first if legal, then gravity runs when more than the
// gravity interval has passed since the previous gravity step.
func (g *Game) Step(action core.Action, now time.Time) core.StepResult {
	if g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	g.steps++
	if g.lastGravity.IsZero() {
		g.lastGravity = now
	}

	g.applyAction(action)

	var result core.StepResult
	if now.Sub(g.lastGravity) > g.cfg.Timing.Gravity {
		if !g.tryMove(0, 1) {
			result = g.lock()
		}
		g.lastGravity = now
	}

	result.State = g.State()
	return result
}

// applyAction commits a player intent if the result is legal.
// Illegal moves are silently dropped; there are no wall kicks.
func (g *Game) applyAction(action core.Action) {
	switch action {
	case core.ActionMoveLeft:
		g.tryMove(-1, 0)
	case core.ActionMoveRight:
		g.tryMove(1, 0)
	case core.ActionSoftDrop:
		g.tryMove(0, 1)
	case core.ActionRotate:
		g.tryRotate()
	}
	// ActionQuit ends the process in the platform layer.
}

// tryMove shifts the piece by (dx, dy) unless that collides.
func (g *Game) tryMove(dx, dy int) bool {
	if g.grid.Collides(g.piece, dx, dy, nil) {
		return false
	}
	g.piece.X += dx
	g.piece.Y += dy
	return true
}

// tryRotate turns the piece clockwise unless that collides.
func (g *Game) tryRotate() bool {
	rotated := Rotated(g.piece.Shape)
	if g.grid.Collides(g.piece, 0, 0, rotated) {
		return false
	}
	g.piece.Shape = rotated
	return true
}

// lock freezes the piece, clears lines, spawns the next piece and handles a
// blocked spawn.
func (g *Game) lock() core.StepResult {
	result := core.StepResult{Locked: true}

	g.grid.Freeze(g.piece)
	cleared := g.grid.ClearLines()
	g.score += cleared * g.cfg.Gameplay.LinePoints
	result.LinesCleared = cleared

	g.spawn()
	if !g.grid.Collides(g.piece, 0, 0, nil) {
		return result
	}

	// No room to spawn
	result.LifeLost = true
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return result
	}
	g.grid.Reset()
	g.spawn()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
	}
}

// Grid returns the play field. Callers must not modify it.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece {
	return g.piece
}
