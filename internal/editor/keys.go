package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Quit     key.Binding
	Clear    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "executar")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
	Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "limpar")),
	NextPage: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "próxima página")),
	PrevPage: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "página anterior")),
}
