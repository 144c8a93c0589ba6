package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Success  = lipgloss.Color("#22C55E") // Green
	Caution  = lipgloss.Color("#F59E0B") // Amber
	Error    = lipgloss.Color("#F43F5E") // Rose
	Emphasis = lipgloss.Color("#F97316") // Orange
)

// Typography
var (
	Label = lipgloss.NewStyle().
		Bold(true)
)

// Status badges
var (
	StatusGood = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Caution).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusInputError = lipgloss.NewStyle().
				Foreground(Emphasis).
				Bold(true)
)
