// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	reload    key.Binding
	nextKind  key.Binding
	newRecord key.Binding
	save      key.Binding
	copyID    key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	nextKind:  key.NewBinding(key.WithKeys("tab")),
	newRecord: key.NewBinding(key.WithKeys("1", "2", "3")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	copyID:    key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
