package cmd

import "charm.land/lipgloss/v2"

var (
	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E")) // Green

	noMatchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E")) // Rose

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")) // Vivid Purple

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")) // Slate
)
