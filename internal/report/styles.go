package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	path  lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
}

// ANSI colours: 1 red, 2 green, 3 yellow, 6 cyan, 7 white, 8 grey.
func newStyles() styles {
	return styles{
		label: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		path:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		ok:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
