package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors, AdaptiveColor{Light, Dark}.
var (
	titleText     = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	textSecondary = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	textDim       = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}
	keybindKey    = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}

	statusRunning = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	statusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	statusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	statusPending = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(titleText).Bold(true)
	secondaryStyle = lipgloss.NewStyle().Foreground(textSecondary)
	dimStyle       = lipgloss.NewStyle().Foreground(textDim)
	keyStyle       = lipgloss.NewStyle().Foreground(keybindKey)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(textDim).
			Padding(0, 1)
)
