// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Open         key.Binding
	OpenExpanded key.Binding
	Expand       key.Binding
	Filter       key.Binding
	Copy         key.Binding
	CopyAll      key.Binding
	Back         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	KeyHelp      key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	OpenExpanded: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open expanded"),
	),
	Expand: key.NewBinding(
		key.WithKeys("e", "tab"),
		key.WithHelp("e", "expand/collapse"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy source"),
	),
	CopyAll: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy view"),
	),
	Back: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("Q", "ctrl+c"),
		key.WithHelp("Q", "force quit"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "keys"),
	),
}

// ShortHelp lists the bindings shown in the topic list's status line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.OpenExpanded, k.Filter, k.KeyHelp, k.Quit}
}

// FullHelp groups every binding into columns for `helpview keys`
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.OpenExpanded, k.Expand, k.Filter},
		{k.Copy, k.CopyAll, k.Back, k.Quit, k.ForceQuit, k.KeyHelp},
	}
}

// HelpText renders bindings as "[keys]desc" pairs for status lines
func HelpText(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += " "
		}
		out += "[" + b.Help().Key + "]" + b.Help().Desc
	}
	return out
}

func HandleVimNavigation(msg tea.KeyMsg, currentIndex, maxIndex int) (int, bool) {
	if maxIndex <= 0 {
		return 0, false
	}
	switch msg.String() {
	case "j", "down":
		if currentIndex < maxIndex-1 {
			return currentIndex + 1, true
		}
	case "k", "up":
		if currentIndex > 0 {
			return currentIndex - 1, true
		}
	case "g", "home":
		return 0, true
	case "G", "end":
		return maxIndex - 1, true
	case "ctrl+d", "pgdown":
		newIndex := currentIndex + 10
		if newIndex >= maxIndex {
			newIndex = maxIndex - 1
		}
		return newIndex, true
	case "ctrl+u", "pgup":
		newIndex := currentIndex - 10
		if newIndex < 0 {
			newIndex = 0
		}
		return newIndex, true
	}
	return currentIndex, false
}
