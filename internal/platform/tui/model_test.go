package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetro/internal/config"
	"github.com/vovakirdan/tetro/internal/core"
)

// fakeGame records the actions it is stepped with.
type fakeGame struct {
	actions []core.Action
	times   []time.Time
	overAt  int // Step count that ends the game, 0 = never
	state   core.GameState
}

func (f *fakeGame) Title() string { return "fake" }

func (f *fakeGame) Step(action core.Action, now time.Time) core.StepResult {
	f.actions = append(f.actions, action)
	f.times = append(f.times, now)
	res := core.StepResult{}
	if f.overAt > 0 && len(f.actions) >= f.overAt {
		f.state.GameOver = true
		res.LifeLost = true
		res.Locked = true
	}
	res.State = f.state
	return res
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "Lives: 3")
}

func (f *fakeGame) State() core.GameState { return f.state }

func newTestModel(game Game, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := config.Default()
	cfg.Timing.GameOverDelay = time.Millisecond
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	return NewModel(game, cfg, rc, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func start(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, PhasePlaying, m.Phase())
	return m
}

func TestSplashWaitsForKey(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	require.Equal(t, PhaseSplash, m.Phase())
	assert.Contains(t, m.View(), SplashPrompt)

	// Ticks are ignored before the game starts
	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Empty(t, game.actions)

	// Any key starts, and the pressed key is not queued
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, PhasePlaying, m.Phase())
	assert.NotNil(t, cmd, "starting the game should schedule a tick")
	assert.Zero(t, m.input.Len())
}

func TestOneActionPerTick(t *testing.T) {
	game := &fakeGame{}
	m := start(t, newTestModel(game, nil))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(now.Add(time.Duration(i)*100*time.Millisecond)))
		require.NotNil(t, cmd, "tick should schedule the next tick")
	}

	assert.Equal(t, []core.Action{core.ActionMoveLeft, core.ActionRotate, core.ActionNone}, game.actions)
	assert.True(t, game.times[2].Equal(now.Add(200*time.Millisecond)))
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			game := &fakeGame{}
			m := start(t, newTestModel(game, nil))

			m, cmd := update(t, m, msg)
			assert.True(t, isQuit(cmd))
			assert.Empty(t, m.View())
			assert.Zero(t, m.input.Len(), "quit is never queued")
		})
	}
}

func TestQuitFromSplash(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	_, cmd := update(t, m, runeKey('q'))
	assert.True(t, isQuit(cmd))
}

func TestQuitFromGameOver(t *testing.T) {
	m := start(t, newTestModel(&fakeGame{overAt: 1}, nil))
	m, _ = update(t, m, TickMsg(time.Now()))
	require.Equal(t, PhaseGameOver, m.Phase())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestGameOverFlow(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	game := &fakeGame{overAt: 1}
	m := start(t, newTestModel(game, logger))

	m, cmd := update(t, m, TickMsg(time.Now()))
	require.Equal(t, PhaseGameOver, m.Phase())
	require.NotNil(t, cmd, "game over should schedule the exit")

	out := logs.String()
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "final field")
	assert.Contains(t, out, "Lives: 3")

	// Further input and ticks do nothing
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd = update(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Len(t, game.actions, 1)

	assert.Contains(t, m.View(), "Lives: 3")

	_, cmd = update(t, m, gameOverDoneMsg{})
	assert.True(t, isQuit(cmd), "the game over delay should end the program")
}

func TestResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, 40, m.screen.Width())
	assert.Equal(t, 10, m.screen.Height())
	assert.Empty(t, game.actions)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 100")
	s.SetColored(0, 1, '█', core.ColorRed)
	s.SetColored(1, 1, '█', core.ColorRed)

	out := RenderScreen(s)
	assert.Contains(t, out, "Score: 100")
	assert.Contains(t, out, "██")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
