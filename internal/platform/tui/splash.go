package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const banner = `
████████╗███████╗████████╗██████╗  ██████╗     ██████╗██╗     ██╗
╚══██╔══╝██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗   ██╔════╝██║     ██║
   ██║   █████╗     ██║   ██████╔╝██║   ██║   ██║     ██║     ██║
   ██║   ██╔══╝     ██║   ██╔══██╗██║   ██║   ██║     ██║     ██║
   ██║   ███████╗   ██║   ██║  ██║╚██████╔╝   ╚██████╗███████╗██║
   ╚═╝   ╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝     ╚═════╝╚══════╝╚═╝`

// SplashPrompt is shown under the banner until a key is pressed.
const SplashPrompt = "Press any key to start"

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
)

// renderSplash draws the intro screen centered in the terminal.
func renderSplash(width, height int, h help.Model, keys KeyMap) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		bannerStyle.Render(strings.TrimPrefix(banner, "\n")),
		"",
		"",
		promptStyle.Render(SplashPrompt),
		"",
		h.View(keys),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
