// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpview/helpview-cli/internal/help"
	"github.com/helpview/helpview-cli/internal/help/render"
)

func newTestHelpView(t *testing.T) (*HelpView, *help.Store) {
	t.Helper()

	renderer := render.New(render.WithPlain(true))
	t.Cleanup(renderer.Close)

	store := help.NewStore()
	v := NewHelpView(store, testCatalog(), renderer)
	t.Cleanup(v.Close)
	return v, store
}

func TestHelpView_NotSized(t *testing.T) {
	v, store := newTestHelpView(t)
	store.ShowHelp("faq-123", true)

	assert.Empty(t, v.View())
}

func TestHelpView_ShowsCurrentTopic(t *testing.T) {
	v, store := newTestHelpView(t)
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	store.ShowHelp("faq-123", true)
	out := v.View()
	assert.Contains(t, out, "FAQ")
	assert.Contains(t, out, "Answers.")

	store.ShowHelp("navigation", false)
	out = v.View()
	assert.Contains(t, out, "Navigation")
	assert.NotContains(t, v.Panel().ContentText(), "Use j and k.")
}

func TestHelpView_SmallTerminal(t *testing.T) {
	v, store := newTestHelpView(t)
	store.ShowHelp("faq-123", true)

	v.Update(tea.WindowSizeMsg{Width: 15, Height: 4})
	assert.Contains(t, v.View(), "Help")
}

func TestHelpView_QuestionMarkCloses(t *testing.T) {
	v, store := newTestHelpView(t)
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	store.ShowHelp("faq-123", true)

	handled, _, cmd := v.HandleKey(keyMsg("?"))
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, help.ExitHelpMsg{}, cmd())

	handled, _, _ = v.HandleKey(keyMsg("j"))
	assert.False(t, handled)
	assert.False(t, v.IsKeyDisabled("j"))
}

func TestHelpView_ToggleDelegatesToPanel(t *testing.T) {
	v, store := newTestHelpView(t)
	v.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	store.ShowHelp("faq-123", false)

	_, cmd := v.Update(keyMsg("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, help.ShowHelpMsg{ID: "faq-123", OpenByDefault: true}, cmd())
}
