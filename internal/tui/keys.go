package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	copy      key.Binding
	pushState key.Binding
	pushSense key.Binding
	resync    key.Binding
	journal   key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	copy:      key.NewBinding(key.WithKeys("c")),
	pushState: key.NewBinding(key.WithKeys("s")),
	pushSense: key.NewBinding(key.WithKeys("p")),
	resync:    key.NewBinding(key.WithKeys("g")),
	journal:   key.NewBinding(key.WithKeys("tab")),
	info:      key.NewBinding(key.WithKeys("i")),
}
