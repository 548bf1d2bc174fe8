package tui

import "github.com/charmbracelet/bubbles/key"

// appKeys are the bindings active in every view.
type appKeys struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Back      key.Binding
	Sidebar   key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "sidebar")),
		Sidebar:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle sidebar")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "menu up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "menu down")),
		Open:      key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k appKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sidebar, k.Back, k.Help, k.Quit},
		{k.Up, k.Down, k.Open},
	}
}
