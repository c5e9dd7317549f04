// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helpview/helpview-cli/internal/help"
	"github.com/helpview/helpview-cli/internal/help/render"
	"github.com/helpview/helpview-cli/internal/help/topics"
	"github.com/helpview/helpview-cli/internal/tui/components"
	"github.com/helpview/helpview-cli/internal/tui/debug"
)

// HelpView displays the topic named by the help store as a full-screen view
type HelpView struct {
	// Embed the help panel to reuse its scrolling and copy handling
	helpComponent *components.HelpPanel

	layout *components.WindowLayout
	width  int
	height int
}

// NewHelpView creates a help view bound to store
func NewHelpView(store *help.Store, catalog *topics.Catalog, renderer *render.Renderer) *HelpView {
	return &HelpView{
		helpComponent: components.NewHelpPanel(store, catalog, renderer),
	}
}

// Init initializes the help view
func (h *HelpView) Init() tea.Cmd {
	debug.LogToFilef("HELP: Initializing help view\n")
	return nil
}

// Close detaches the view from the store
func (h *HelpView) Close() {
	h.helpComponent.Close()
}

// Update handles all messages for the help view
func (h *HelpView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		return h.handleWindowSizeMsg(wsMsg)
	}

	updatedHelp, cmd := h.helpComponent.Update(msg)
	h.helpComponent = updatedHelp
	return h, cmd
}

// View renders the help view
func (h *HelpView) View() string {
	if h.layout == nil || h.width == 0 || h.height == 0 {
		return ""
	}

	if !h.layout.IsValidDimensions() {
		return h.layout.GetMinimalView("Help - Terminal too small")
	}

	return h.helpComponent.View()
}

// Panel returns the embedded help panel
func (h *HelpView) Panel() *components.HelpPanel {
	return h.helpComponent
}

// handleWindowSizeMsg handles terminal resize events
func (h *HelpView) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h.width = msg.Width
	h.height = msg.Height

	if h.layout == nil {
		h.layout = components.NewWindowLayout(msg.Width, msg.Height)
	} else {
		h.layout.Update(msg.Width, msg.Height)
	}

	h.helpComponent.SetSize(msg.Width, msg.Height)

	debug.LogToFilef("HELP: Window resized to %dx%d\n", msg.Width, msg.Height)
	return h, nil
}

// Implement CoreViewKeymap interface

// IsKeyDisabled returns whether a key is disabled in this view
func (h *HelpView) IsKeyDisabled(keyString string) bool {
	return false
}

// HandleKey claims "?" so it closes the topic instead of reopening key help
func (h *HelpView) HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	if keyMsg.String() == "?" {
		model, cmd = h.Update(keyMsg)
		return true, model, cmd
	}
	return false, h, nil
}
