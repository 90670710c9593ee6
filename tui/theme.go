package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles used across the views.
type Theme struct {
	Banner       lipgloss.Style
	BannerError  lipgloss.Style
	Nav          lipgloss.Style
	NavActive    lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Selected     lipgloss.Style
	Muted        lipgloss.Style
	ErrorText    lipgloss.Style
	InputPrompt  lipgloss.Style
}

// DefaultTheme returns the standard dark theme.
func DefaultTheme() Theme {
	return Theme{
		Banner:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Padding(0, 1),
		BannerError: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")).Padding(0, 1),
		Nav:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		NavActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ErrorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		InputPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	}
}
