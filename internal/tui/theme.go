package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles the board is drawn with.
type Theme struct {
	Title         lipgloss.Style
	Count         lipgloss.Style
	LetterActive  lipgloss.Style
	LetterMissing lipgloss.Style
	GroupHeader   lipgloss.Style
	Name          lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Liked         lipgloss.Style
	Muted         lipgloss.Style
	Notice        lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// DefaultTheme is tuned for dark terminals.
var DefaultTheme = Theme{
	Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Count:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	LetterActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	LetterMissing: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	GroupHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true),
	Name:          lipgloss.NewStyle(),
	Selected:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
	Highlighted:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
	Liked:         lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
	Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Notice:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	HelpKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	HelpDesc:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}
