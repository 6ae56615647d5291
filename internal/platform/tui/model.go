package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetro/internal/config"
	"github.com/vovakirdan/tetro/internal/core"
)

// Game is the engine surface the platform drives.
// Implementations contain pure logic; timing, input and drawing live here.
type Game interface {
	// Title returns a human-readable name for display.
	Title() string

	// Step applies at most one action and advances gravity to the given time.
	Step(action core.Action, now time.Time) core.StepResult

	// Render draws the current state into the screen buffer.
	// It must not change the game.
	Render(dst *core.Screen)

	// State returns the current score, lives and game over flag.
	State() core.GameState
}

// Phase is the screen the model is showing.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlaying
	PhaseGameOver
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    config.Config
	keyMapper *KeyMapper
	help      help.Model
	input     *core.InputQueue
	logger    *log.Logger
	phase     Phase
	gameState core.GameState
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be Reset for the screen size.
func NewModel(game Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		game:      game,
		screen:    core.NewScreen(rc.ScreenW, rc.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		input:     core.NewInputQueue(),
		logger:    logger,
		phase:     PhaseSplash,
		gameState: game.State(),
		width:     rc.ScreenW,
		height:    rc.ScreenH,
	}
}

// Phase returns the current screen.
func (m Model) Phase() Phase {
	return m.phase
}

// Init shows the splash screen; ticking starts on the first key.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case gameOverDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == PhasePlaying {
		if m.keyMapper.MapKeyToQueue(msg, m.input) {
			return m.quit()
		}
		return m, nil
	}

	if _, isQuit := m.keyMapper.MapKey(msg); isQuit {
		return m.quit()
	}

	if m.phase == PhaseSplash {
		m.phase = PhasePlaying
		m.logger.Debug("game started")
		return m, tickCmd(m.config.Timing.PollInterval)
	}
	// Input during the game over screen is ignored

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.logger.Info("quit", "score", m.gameState.Score, "lives", m.gameState.Lives)
	m.quitting = true
	return m, tea.Quit
}

// handleResize tracks the terminal size. The field keeps the size it was
// created with; only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick polls one action and advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.phase != PhasePlaying {
		return m, nil
	}

	result := m.game.Step(m.input.Poll(), now)
	m.gameState = result.State
	m.logStep(result)

	if m.gameState.GameOver {
		m.phase = PhaseGameOver
		m.input.Clear()
		m.logger.Info("game over", "score", m.gameState.Score)
		m.game.Render(m.screen)
		m.logger.Debug("final field", "screen", m.screen.String())
		return m, gameOverCmd(m.config.Timing.GameOverDelay)
	}

	return m, tickCmd(m.config.Timing.PollInterval)
}

// logStep records the events of one step.
func (m Model) logStep(result core.StepResult) {
	if !result.Locked {
		return
	}
	m.logger.Debug("piece locked", "lines", result.LinesCleared)
	if result.LinesCleared > 0 {
		m.logger.Info("lines cleared", "count", result.LinesCleared, "score", result.State.Score)
	}
	if result.LifeLost {
		m.logger.Warn("no room to spawn", "lives", result.State.Lives)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == PhaseSplash {
		return renderSplash(m.width, m.height, m.help, m.keyMapper.Keys())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the game ends.
func Run(game Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger, opts ...tea.ProgramOption) error {
	model := NewModel(game, cfg, rc, logger)

	options := append([]tea.ProgramOption{
		tea.WithAltScreen(), // Use alternate screen buffer
	}, opts...)

	p := tea.NewProgram(model, options...)

	_, err := p.Run()
	return err
}
