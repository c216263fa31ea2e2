package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#10B981")
	muted  = lipgloss.Color("#9CA3AF")
	danger = lipgloss.Color("#F87171")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(danger).
			Border(lipgloss.RoundedBorder()).BorderForeground(danger).Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	nutrientStyle  = lipgloss.NewStyle().Width(12)
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	quickKeyStyle  = lipgloss.NewStyle().Bold(true)
)
