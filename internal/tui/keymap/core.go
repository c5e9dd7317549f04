// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package keymap

import tea "github.com/charmbracelet/bubbletea"

// CoreViewKeymap is the interface views implement to control key behavior
type CoreViewKeymap interface {
	// IsKeyDisabled returns true if the given key should be ignored for this view
	IsKeyDisabled(keyString string) bool

	// HandleKey allows views to claim a key before global processing
	// Returns (handled, model, cmd) - if handled=true, the result is used instead of default processing
	HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd)
}

// KeyAction represents what should happen when a key is pressed
type KeyAction int

const (
	// ActionViewSpecific lets the current view handle the key
	ActionViewSpecific KeyAction = iota
	// ActionIgnore drops the key
	ActionIgnore

	// Global actions
	ActionGlobalQuit
	ActionShowKeyHelp
)

// KeyMapping defines how a key should be processed
type KeyMapping struct {
	Key    string
	Action KeyAction
	Help   string
}

// CoreKeyRegistry maintains the central registry of keys and their default actions
type CoreKeyRegistry struct {
	mappings map[string]KeyMapping
}

// NewCoreKeyRegistry creates a new key registry with default mappings
func NewCoreKeyRegistry() *CoreKeyRegistry {
	registry := &CoreKeyRegistry{
		mappings: make(map[string]KeyMapping),
	}

	registry.Register("Q", ActionGlobalQuit, "force quit")
	registry.Register("ctrl+c", ActionGlobalQuit, "force quit")
	registry.Register("?", ActionShowKeyHelp, "key help")

	// Keys the views handle themselves
	registry.Register("q", ActionViewSpecific, "close/quit")
	registry.Register("esc", ActionViewSpecific, "close/cancel")
	registry.Register("enter", ActionViewSpecific, "open topic")
	registry.Register("o", ActionViewSpecific, "open expanded")
	registry.Register("e", ActionViewSpecific, "toggle expanded")
	registry.Register("tab", ActionViewSpecific, "toggle expanded")
	registry.Register("/", ActionViewSpecific, "filter")
	registry.Register("y", ActionViewSpecific, "copy")
	registry.Register("Y", ActionViewSpecific, "copy all")
	registry.Register("j", ActionViewSpecific, "down")
	registry.Register("k", ActionViewSpecific, "up")
	registry.Register("up", ActionViewSpecific, "up")
	registry.Register("down", ActionViewSpecific, "down")

	return registry
}

// Register adds a key mapping to the registry
func (r *CoreKeyRegistry) Register(key string, action KeyAction, help string) {
	r.mappings[key] = KeyMapping{
		Key:    key,
		Action: action,
		Help:   help,
	}
}

// GetAction returns the default action for a key, or ActionViewSpecific if not found
func (r *CoreKeyRegistry) GetAction(key string) KeyAction {
	if mapping, exists := r.mappings[key]; exists {
		return mapping.Action
	}
	return ActionViewSpecific
}

// GetMapping returns the full mapping for a key
func (r *CoreKeyRegistry) GetMapping(key string) (KeyMapping, bool) {
	mapping, exists := r.mappings[key]
	return mapping, exists
}

// GetAllMappings returns all registered key mappings
func (r *CoreKeyRegistry) GetAllMappings() map[string]KeyMapping {
	result := make(map[string]KeyMapping)
	for k, v := range r.mappings {
		result[k] = v
	}
	return result
}

// IsGlobalAction returns true if the action is handled regardless of view state
func IsGlobalAction(action KeyAction) bool {
	switch action {
	case ActionGlobalQuit, ActionShowKeyHelp:
		return true
	default:
		return false
	}
}
