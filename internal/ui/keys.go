package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's keyboard shortcuts.
// Up/Down share help text since they render as a single row.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	Enter key.Binding
	Next  key.Binding
	Prev  key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home  g", "Jump to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End   G", "Jump to bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Apply theme"),
		),
		Next: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Next theme"),
		),
		Prev: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Previous theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy primary color"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Next, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Home, k.End},
		{k.Enter, k.Next, k.Prev},
		{k.Copy, k.Help, k.Quit},
	}
}
