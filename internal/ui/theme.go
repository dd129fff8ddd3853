// Package ui holds the terminal styling shared by the menu and the CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Primary = lipgloss.Color("#00ADD8") // Go gopher blue
	Accent  = lipgloss.Color("#8BC34A")
	Muted   = lipgloss.Color("#6C7A89")
	Danger  = lipgloss.Color("#E53935")
)

// Theme groups the styles the menu renders with.
type Theme struct {
	Banner    lipgloss.Style
	Option    lipgloss.Style
	Token     lipgloss.Style
	Prompt    lipgloss.Style
	Separator lipgloss.Style
	Error     lipgloss.Style
}

// NewTheme returns the colored theme, or Plain when color is false.
func NewTheme(color bool) Theme {
	if !color {
		return Plain()
	}
	return Theme{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 4),
		Option:    lipgloss.NewStyle(),
		Token:     lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Prompt:    lipgloss.NewStyle().Foreground(Primary),
		Separator: lipgloss.NewStyle().Foreground(Muted),
		Error:     lipgloss.NewStyle().Foreground(Danger),
	}
}

// Plain renders every string unchanged.
func Plain() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Banner:    s,
		Option:    s,
		Token:     s,
		Prompt:    s,
		Separator: s,
		Error:     s,
	}
}
