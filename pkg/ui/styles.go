package ui

import "github.com/charmbracelet/lipgloss"

// Semantic styles used by the renderers. Adaptive colors keep the output
// readable on both light and dark terminal themes.
var (
	styleEntry = lipgloss.NewStyle().
			Bold(true)

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "246"})

	styleInstall = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "31", Dark: "45"})

	styleCreate = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})

	styleUpdate = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)
