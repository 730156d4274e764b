package spoolui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next  key.Binding
	Reset key.Binding
	Skip  key.Binding
	Back  key.Binding
	Goto  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "next level")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Skip:  key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "skip")),
		Back:  key.NewBinding(key.WithKeys("b", "pgup"), key.WithHelp("b", "back")),
		Goto:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to level")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reset, k.Skip, k.Back, k.Goto, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Reset}, {k.Skip, k.Back, k.Goto}, {k.Quit}}
}
