package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the bindings shown in the footer help.
// Dispatch happens in the input modes; this is display only.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	SortName  key.Binding
	SortValue key.Binding
	Column    key.Binding
	Toggle    key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
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
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SortName: key.NewBinding(
			key.WithKeys("n", "1"),
			key.WithHelp("n", "sort by name"),
		),
		SortValue: key.NewBinding(
			key.WithKeys("v", "2"),
			key.WithHelp("v", "sort by value"),
		),
		Column: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "switch column"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "sort column"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.SortName, k.SortValue, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Search, k.Clear},
		{k.SortName, k.SortValue, k.Column, k.Toggle},
		{k.Help, k.Quit},
	}
}

// searchKeyMap is shown while the search field has focus
type searchKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
}

func newSearchKeyMap() searchKeyMap {
	return searchKeyMap{
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Cancel}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
