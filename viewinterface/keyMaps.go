package viewinterface

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type MainKeyMap struct {
	Submit   key.Binding
	Exit     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func NewDefaultMainKeyMap() MainKeyMap {
	return MainKeyMap{
		Submit: key.NewBinding(
			key.WithKeys(tea.KeyEnter.String()),
		),
		Exit: key.NewBinding(
			key.WithKeys(tea.KeyCtrlC.String()),
		),
		PageUp: key.NewBinding(
			key.WithKeys(tea.KeyCtrlU.String()),
		),
		PageDown: key.NewBinding(
			key.WithKeys(tea.KeyCtrlD.String()),
		),
	}
}
