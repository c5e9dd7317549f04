// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestCoreKeyRegistry(t *testing.T) {
	t.Run("default registry has correct mappings", func(t *testing.T) {
		registry := NewCoreKeyRegistry()

		assert.Equal(t, ActionGlobalQuit, registry.GetAction("Q"))
		assert.Equal(t, ActionGlobalQuit, registry.GetAction("ctrl+c"))
		assert.Equal(t, ActionShowKeyHelp, registry.GetAction("?"))

		assert.Equal(t, ActionViewSpecific, registry.GetAction("q"))
		assert.Equal(t, ActionViewSpecific, registry.GetAction("enter"))
		assert.Equal(t, ActionViewSpecific, registry.GetAction("e"))

		// Unknown keys go to the view
		assert.Equal(t, ActionViewSpecific, registry.GetAction("unknown"))
	})

	t.Run("can register custom mappings", func(t *testing.T) {
		registry := NewCoreKeyRegistry()

		registry.Register("x", ActionIgnore, "nothing")
		assert.Equal(t, ActionIgnore, registry.GetAction("x"))

		mapping, exists := registry.GetMapping("x")
		assert.True(t, exists)
		assert.Equal(t, "x", mapping.Key)
		assert.Equal(t, ActionIgnore, mapping.Action)
		assert.Equal(t, "nothing", mapping.Help)
	})

	t.Run("GetAllMappings returns a copy", func(t *testing.T) {
		registry := NewCoreKeyRegistry()
		all := registry.GetAllMappings()
		delete(all, "Q")

		_, exists := registry.GetMapping("Q")
		assert.True(t, exists)
	})
}

func TestIsGlobalAction(t *testing.T) {
	assert.True(t, IsGlobalAction(ActionGlobalQuit))
	assert.True(t, IsGlobalAction(ActionShowKeyHelp))

	assert.False(t, IsGlobalAction(ActionViewSpecific))
	assert.False(t, IsGlobalAction(ActionIgnore))
}

// MockView implements CoreViewKeymap for testing
type MockView struct {
	disabledKeys map[string]bool
	customKeys   map[string]func(tea.KeyMsg) (bool, tea.Model, tea.Cmd)
}

func NewMockView() *MockView {
	return &MockView{
		disabledKeys: make(map[string]bool),
		customKeys:   make(map[string]func(tea.KeyMsg) (bool, tea.Model, tea.Cmd)),
	}
}

func (m *MockView) IsKeyDisabled(keyString string) bool {
	return m.disabledKeys[keyString]
}

func (m *MockView) HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	if handler, exists := m.customKeys[keyMsg.String()]; exists {
		return handler(keyMsg)
	}
	return false, m, nil
}

func (m *MockView) Init() tea.Cmd                           { return nil }
func (m *MockView) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m *MockView) View() string                            { return "mock view" }

func TestCoreViewKeymapInterface(t *testing.T) {
	view := NewMockView()
	var km CoreViewKeymap = view

	assert.False(t, km.IsKeyDisabled("e"))
	view.disabledKeys["e"] = true
	assert.True(t, km.IsKeyDisabled("e"))

	called := false
	view.customKeys["x"] = func(tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
		called = true
		return true, view, nil
	}

	handled, model, cmd := km.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, handled)
	assert.Equal(t, view, model)
	assert.Nil(t, cmd)
	assert.True(t, called)
}
