// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	star      key.Binding
	filter    key.Binding
	rate      key.Binding
	reload    key.Binding
	weather   key.Binding
	skip      key.Binding
	toggle    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	newItem:   key.NewBinding(key.WithKeys("a")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	star:      key.NewBinding(key.WithKeys("s")),
	filter:    key.NewBinding(key.WithKeys("f")),
	rate:      key.NewBinding(key.WithKeys("r")),
	reload:    key.NewBinding(key.WithKeys("ctrl+r")),
	weather:   key.NewBinding(key.WithKeys("w")),
	skip:      key.NewBinding(key.WithKeys("s")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
