// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package keymap

// NavigationKey represents a key that can be enabled/disabled per view
type NavigationKey string

const (
	// NavigationKeyOpen opens the selected topic in the configured mode
	NavigationKeyOpen NavigationKey = "enter"
	// NavigationKeyOpenExpanded opens the selected topic expanded
	NavigationKeyOpenExpanded NavigationKey = "o"
	// NavigationKeyFilter starts fuzzy filtering
	NavigationKeyFilter NavigationKey = "/"
	// NavigationKeyExpand toggles the presentation mode of an open topic
	NavigationKeyExpand NavigationKey = "e"
	// NavigationKeyCopy copies the topic source
	NavigationKeyCopy NavigationKey = "y"
	// NavigationKeyQuit closes the topic or quits
	NavigationKeyQuit NavigationKey = "q"
)

// ViewKeymap defines which navigation keys are available for a view
type ViewKeymap interface {
	// IsNavigationKeyEnabled returns true if the given navigation key is enabled for this view
	IsNavigationKeyEnabled(key NavigationKey) bool
}

// DefaultKeymap provides default key mappings that most views can use
type DefaultKeymap struct {
	enabledKeys map[NavigationKey]bool
}

// NewDefaultKeymap creates a keymap with all navigation keys enabled by default
func NewDefaultKeymap() *DefaultKeymap {
	return &DefaultKeymap{
		enabledKeys: map[NavigationKey]bool{
			NavigationKeyOpen:         true,
			NavigationKeyOpenExpanded: true,
			NavigationKeyFilter:       true,
			NavigationKeyExpand:       true,
			NavigationKeyCopy:         true,
			NavigationKeyQuit:         true,
		},
	}
}

// NewKeymapWithDisabled creates a keymap with specified keys disabled
func NewKeymapWithDisabled(disabledKeys ...NavigationKey) *DefaultKeymap {
	keymap := NewDefaultKeymap()
	for _, key := range disabledKeys {
		keymap.enabledKeys[key] = false
	}
	return keymap
}

// IsNavigationKeyEnabled implements ViewKeymap interface
func (k *DefaultKeymap) IsNavigationKeyEnabled(key NavigationKey) bool {
	enabled, exists := k.enabledKeys[key]
	return exists && enabled
}

// IsKeyDisabled reports whether keyString is a navigation key switched off
// in km. Keys that are not navigation keys are never disabled.
func IsKeyDisabled(km ViewKeymap, keyString string) bool {
	if km == nil {
		return false
	}
	key := NavigationKey(keyString)
	switch key {
	case NavigationKeyOpen, NavigationKeyOpenExpanded, NavigationKeyFilter,
		NavigationKeyExpand, NavigationKeyCopy, NavigationKeyQuit:
		return !km.IsNavigationKeyEnabled(key)
	default:
		return false
	}
}
