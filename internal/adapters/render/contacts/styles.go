package contacts

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	section lipgloss.Style
	heading lipgloss.Style
	number  lipgloss.Style
	name    lipgloss.Style
	uin     lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().MarginTop(1),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		number:  lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		uin:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
