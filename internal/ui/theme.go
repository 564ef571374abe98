package ui

import (
	"charm.land/lipgloss/v2"
)

// Theme holds the styles of the playground. The zero Theme renders plain
// text.
type Theme struct {
	Title       lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
	Status      lipgloss.Style
	Preview     lipgloss.Style
	Error       lipgloss.Style
}

// DefaultTheme is the colored theme used unless --no-color is set.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Selected:    lipgloss.NewStyle().Reverse(true).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Preview:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// PlainTheme renders without ANSI styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:       plain,
		Item:        plain,
		Selected:    plain,
		Description: plain,
		Status:      plain,
		Preview:     plain,
		Error:       plain,
	}
}
