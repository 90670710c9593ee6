package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global and player-view key bindings.
type keyMap struct {
	Quit       key.Binding
	NextView   key.Binding
	PlayPause  key.Binding
	Previous   key.Binding
	Next       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	SetVolume  key.Binding
	Mute       key.Binding
	SeekBack   key.Binding
	SeekFwd    key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Add        key.Binding
	Delete     key.Binding
	Back       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextView:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		PlayPause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Previous:   key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "previous")),
		Next:       key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n", "next")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolumeDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		SetVolume:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "set volume")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		SeekBack:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "seek -10s")),
		SeekFwd:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "seek +10s")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add feed")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete feed")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
