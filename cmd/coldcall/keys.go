package main

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the game's key bindings. It implements help.KeyMap.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Use        key.Binding
	Timer      key.Binding
	Reset      key.Binding
	Challenges key.Binding
	Help       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Use: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "use example"),
		),
		Timer: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Challenges: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "challenges"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Use, k.Timer, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Use},
		{k.Timer, k.Reset, k.Challenges},
		{k.Help, k.Quit},
	}
}

// confirmKeys is the help shown while a reset is awaiting confirmation.
type confirmKeys struct{ keyMap }

func (k confirmKeys) ShortHelp() []key.Binding { return []key.Binding{k.Confirm, k.Cancel} }

func (k confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
