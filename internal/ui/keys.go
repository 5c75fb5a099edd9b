package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ToggleMask key.Binding
	CopySecret key.Binding
	CopyPort   key.Binding
	CopyLog    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		ToggleMask: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show/hide secret"),
		),
		CopySecret: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy secret"),
		),
		CopyPort: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "copy port"),
		),
		CopyLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "copy log path"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
