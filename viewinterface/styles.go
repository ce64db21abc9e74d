package viewinterface

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Input  lipgloss.Style
	Screen lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			PaddingLeft(1).
			PaddingRight(2).
			BorderForeground(lipgloss.ANSIColor(8)),

		Screen: lipgloss.NewStyle(),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(10)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(9)),
	}
}

var DefaultStyles = NewStyles()
