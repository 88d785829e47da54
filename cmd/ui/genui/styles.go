package genui

import "github.com/charmbracelet/lipgloss"

type uiStyles struct {
	title   lipgloss.Style
	step    lipgloss.Style
	log     lipgloss.Style
	help    lipgloss.Style
	spinner lipgloss.Style
}

func genStyles() uiStyles {
	return uiStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")).MarginLeft(2),
		step:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		log:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
	}
}
