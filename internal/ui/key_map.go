package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	next    key.Binding
	enter   key.Binding
	save    key.Binding
	open    key.Binding
	logout  key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save report")),
		open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new submission")),
		quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.enter},
		{k.save, k.open},
		{k.logout, k.restart, k.quit},
	}
}
