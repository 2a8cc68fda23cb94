package render

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Styles used by the CLI output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			Underline(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(Text)

	hintStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	questionStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	goodStyle = lipgloss.NewStyle().
			Foreground(Success)

	weakStyle = lipgloss.NewStyle().
			Foreground(Warning)

	barFilled = lipgloss.NewStyle().
			Background(Secondary)

	barEmpty = lipgloss.NewStyle().
			Background(Border)
)
