package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tema"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "sair"),
		),
	}
}
