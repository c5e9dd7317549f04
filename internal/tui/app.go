// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/helpview/helpview-cli/internal/help"
	"github.com/helpview/helpview-cli/internal/help/render"
	"github.com/helpview/helpview-cli/internal/help/topics"
	"github.com/helpview/helpview-cli/internal/tui/debug"
	"github.com/helpview/helpview-cli/internal/tui/keymap"
	"github.com/helpview/helpview-cli/internal/tui/views"
)

// KeyHelpTopic is opened by the global "?" key
const KeyHelpTopic = "navigation"

// App is the root model. It owns the help store and applies every help
// message on the Update goroutine, so the store needs no locking.
type App struct {
	store       *help.Store
	catalog     *topics.Catalog
	renderer    *render.Renderer
	keyRegistry *keymap.CoreKeyRegistry // Central key processing

	topicsView *views.TopicsView
	helpView   *views.HelpView

	width  int // Current window width
	height int // Current window height

	sessionID       string // Tags debug log lines from this run
	initialTopic    string
	initialExpanded bool
	unsubscribe     func()
}

// Option configures an App
type Option func(*App)

// WithInitialTopic opens id before the first frame
func WithInitialTopic(id string, expanded bool) Option {
	return func(a *App) {
		a.initialTopic = id
		a.initialExpanded = expanded
	}
}

// NewApp creates the root model. openByDefault is the mode used when a
// topic is opened from the list with enter.
func NewApp(catalog *topics.Catalog, renderer *render.Renderer, openByDefault bool, opts ...Option) *App {
	store := help.NewStore()
	a := &App{
		sessionID:   uuid.NewString(),
		store:       store,
		catalog:     catalog,
		renderer:    renderer,
		keyRegistry: keymap.NewCoreKeyRegistry(),
		topicsView:  views.NewTopicsView(catalog, openByDefault),
		helpView:    views.NewHelpView(store, catalog, renderer),
	}
	a.unsubscribe = store.Subscribe(func(s help.State) {
		debug.LogToFileWithTimestampf("APP[%s]: help state id=%q openByDefault=%v visible=%v\n",
			a.sessionID[:8], s.CurrentHelpID, s.OpenByDefault, s.Visible())
	})

	for _, opt := range opts {
		opt(a)
	}
	if a.initialTopic != "" {
		store.ShowHelp(a.initialTopic, a.initialExpanded)
	}
	return a
}

// SessionID identifies this run of the viewer
func (a *App) SessionID() string {
	return a.sessionID
}

// Store returns the help store owned by the app
func (a *App) Store() *help.Store {
	return a.store
}

// Close releases store subscriptions
func (a *App) Close() {
	a.helpView.Close()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	debug.LogToFileWithTimestampf("APP[%s]: session started with %d topics\n", a.sessionID[:8], a.catalog.Len())
	return tea.Batch(a.topicsView.Init(), a.helpView.Init())
}

func (a *App) current() tea.Model {
	if a.store.Visible() {
		return a.helpView
	}
	return a.topicsView
}

// Update implements tea.Model. Help messages are applied first, then
// window sizes go to every view, then keys pass through the central
// processor before reaching the current view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.store.Apply(msg) {
		debug.LogToFilef("APP: Applied %T\n", msg)
		return a, nil
	}

	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		debug.LogToFilef("APP: Received WindowSizeMsg: width=%d, height=%d\n", wsMsg.Width, wsMsg.Height)
		a.width = wsMsg.Width
		a.height = wsMsg.Height
		_, cmd1 := a.topicsView.Update(msg)
		_, cmd2 := a.helpView.Update(msg)
		return a, tea.Batch(cmd1, cmd2)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := a.processKeyWithFiltering(keyMsg); handled {
			debug.LogToFilef("APP: Key '%s' handled by central processor\n", keyMsg.String())
			return a, cmd
		}
	}

	_, cmd := a.current().Update(msg)
	return a, cmd
}

// View implements tea.Model
func (a *App) View() string {
	return a.current().View()
}

// processKeyWithFiltering routes a key through the current view's keymap
// and then the global registry
func (a *App) processKeyWithFiltering(keyMsg tea.KeyMsg) (bool, tea.Cmd) {
	keyString := keyMsg.String()
	current := a.current()

	if viewKeymap, hasKeymap := current.(keymap.CoreViewKeymap); hasKeymap {
		if viewKeymap.IsKeyDisabled(keyString) {
			debug.LogToFilef("APP: Key '%s' disabled by %T\n", keyString, current)
			return true, nil
		}
		if handled, _, cmd := viewKeymap.HandleKey(keyMsg); handled {
			return true, cmd
		}
	}

	action := a.keyRegistry.GetAction(keyString)
	if mapping, ok := a.keyRegistry.GetMapping(keyString); ok && keymap.IsGlobalAction(action) {
		debug.LogToFilef("APP: Global key '%s' (%s)\n", keyString, mapping.Help)
	}

	switch action {
	case keymap.ActionGlobalQuit:
		return true, tea.Quit
	case keymap.ActionShowKeyHelp:
		if a.store.Visible() {
			return false, nil
		}
		return true, help.Show(KeyHelpTopic, true)
	case keymap.ActionIgnore:
		return true, nil
	}
	return false, nil
}

// Run starts the program on the alternate screen
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
