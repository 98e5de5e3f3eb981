package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Home    key.Binding
	Add     key.Binding
	Save    key.Binding
	Reload  key.Binding
	Import  key.Binding
	History key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Home:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "home")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Save:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Import:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		History: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) boardHelp() []key.Binding {
	return []key.Binding{k.Select, k.Home, k.Add, k.Save, k.Reload, k.Import, k.History, k.Quit}
}

func (k keyMap) historyHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Clear, k.History, k.Quit}
}
