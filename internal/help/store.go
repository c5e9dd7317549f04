// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package help holds the session-wide help view state: which topic is
// shown, if any, and whether it opens expanded.
package help

// State is a snapshot of the help view state.
// An empty CurrentHelpID means no help is shown. OpenByDefault only
// carries meaning while a topic is shown.
type State struct {
	CurrentHelpID string
	OpenByDefault bool
}

// Visible reports whether a help topic is being shown
func (s State) Visible() bool {
	return s.CurrentHelpID != ""
}

// Store is the single source of truth for the help view state.
// It is created once per session and handed to views by pointer. Only
// ShowHelp and ExitHelp mutate it. All calls happen on the Bubble Tea
// update goroutine, so there is no locking.
type Store struct {
	state       State
	subscribers []*subscriber
}

type subscriber struct {
	fn func(State)
}

// NewStore creates a store with no help shown
func NewStore() *Store {
	return &Store{}
}

// ShowHelp shows the topic id in the given presentation mode.
// Both fields are overwritten; id is not validated.
func (s *Store) ShowHelp(id string, openByDefault bool) {
	s.state = State{
		CurrentHelpID: id,
		OpenByDefault: openByDefault,
	}
	s.notify()
}

// ExitHelp hides the help panel and resets the presentation mode
func (s *Store) ExitHelp() {
	s.state = State{}
	s.notify()
}

// State returns a copy of the current state
func (s *Store) State() State {
	return s.state
}

// CurrentHelpID returns the id of the shown topic, or "" when hidden
func (s *Store) CurrentHelpID() string {
	return s.state.CurrentHelpID
}

// OpenByDefault returns the presentation mode of the shown topic
func (s *Store) OpenByDefault() bool {
	return s.state.OpenByDefault
}

// Visible reports whether a help topic is being shown
func (s *Store) Visible() bool {
	return s.state.Visible()
}

// Subscribe registers fn to be called after every mutation, in
// subscription order. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}
	s.subscribers = append(s.subscribers, sub)

	return func() {
		for i, existing := range s.subscribers {
			if existing == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	// Copy so a subscriber can unsubscribe itself while being notified
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(s.state)
	}
}
