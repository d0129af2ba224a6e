package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all lipgloss styles used in the CLI
var Styles = struct {
	Bold       lipgloss.Style
	Header     lipgloss.Style
	Muted      lipgloss.Style
	Name       lipgloss.Style
	Amount     lipgloss.Style
	SuccessBox lipgloss.Style
}{
	Bold:   lipgloss.NewStyle().Bold(true),
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Amount: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),

	SuccessBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("42")).
		Padding(0, 1).
		Width(60),
}
