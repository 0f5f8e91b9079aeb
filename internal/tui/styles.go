package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Main application frame
	appStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Pane frames; the active pane gets the highlighted border
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	activePaneStyle = paneStyle.
			BorderForeground(lipgloss.Color("#4F4FB7"))

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#81A1C1"))

	// Cursor line
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	// Include flag markers
	includedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	excludedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Kind filter row
	kindOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	kindOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")).
			Background(lipgloss.Color("#373737")).
			Padding(0, 1)

	kindDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5A5A5A")).
				Background(lipgloss.Color("#2A2A2A")).
				Strikethrough(true).
				Padding(0, 1)

	// Status bar
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	// Unknown texture token marker
	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D08770")).
			Italic(true)
)
