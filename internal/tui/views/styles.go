package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/hzr/internal/tui/components"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	inputBoxActiveStyle = inputBoxStyle.
				BorderForeground(lipgloss.Color("#ffe66d"))

	rubyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2).
			Margin(1, 0)

	bigCharStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(1, 2)

	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff6b6b")).
			Padding(0, 1)

	pickerItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1)

	pickerItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	historyRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	historyRowActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436"))

	historyDuplicateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8e6cf")).
				Bold(true)

	historyTimeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

// rubyStyles colours the rendered annotation rows.
var rubyStyles = &components.RubyStyles{
	Reading:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")),
	Polyphonic: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Underline(true),
	Base:       lipgloss.NewStyle().Foreground(lipgloss.Color("#f1faee")).Bold(true),
	Plain:      lipgloss.NewStyle().Foreground(lipgloss.Color("#a8dadc")),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1a1a2e")).
		Background(lipgloss.Color("#ffe66d")),
}
