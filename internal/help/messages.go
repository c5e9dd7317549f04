// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import tea "github.com/charmbracelet/bubbletea"

// ShowHelpMsg asks the owner of the Store to call ShowHelp
type ShowHelpMsg struct {
	ID            string
	OpenByDefault bool
}

// ExitHelpMsg asks the owner of the Store to call ExitHelp
type ExitHelpMsg struct{}

// Show returns a command that requests the topic id be shown
func Show(id string, openByDefault bool) tea.Cmd {
	return func() tea.Msg {
		return ShowHelpMsg{ID: id, OpenByDefault: openByDefault}
	}
}

// Exit returns a command that requests the help panel be closed
func Exit() tea.Cmd {
	return func() tea.Msg {
		return ExitHelpMsg{}
	}
}

// Apply applies a help message to the store. It reports whether msg was
// a help message.
func (s *Store) Apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case ShowHelpMsg:
		s.ShowHelp(msg.ID, msg.OpenByDefault)
		return true
	case ExitHelpMsg:
		s.ExitHelp()
		return true
	}
	return false
}
