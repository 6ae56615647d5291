// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// gameOverDoneMsg is sent when the game over screen has been shown long enough.
type gameOverDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends a tick message after the poll interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gameOverCmd returns a command that fires once the game over delay has passed.
func gameOverCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gameOverDoneMsg{}
	})
}
