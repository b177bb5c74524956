package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted study-tool look.
var (
	primary = lipgloss.Color("#2563EB") // Blue
	success = lipgloss.Color("#10B981") // Green
	danger  = lipgloss.Color("#EF4444") // Red
	warning = lipgloss.Color("#F59E0B") // Orange
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	questionCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)

	correctStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)
)
