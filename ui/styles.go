package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the calculator view.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Focus  lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the default calculator styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Label:  lipgloss.NewStyle().Width(9),
		Focus:  lipgloss.NewStyle().Width(9).Bold(true).Foreground(lipgloss.Color("63")),
		Result: lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
