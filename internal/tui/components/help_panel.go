// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/helpview/helpview-cli/internal/help"
	"github.com/helpview/helpview-cli/internal/help/render"
	"github.com/helpview/helpview-cli/internal/help/topics"
	"github.com/helpview/helpview-cli/internal/tui/debug"
	"github.com/helpview/helpview-cli/internal/tui/styles"
	"github.com/helpview/helpview-cli/internal/utils"
)

const copyMessageDuration = 2 * time.Second

// HelpPanel is a scrollable panel showing the topic named by the help store.
// It never writes the store directly; toggling and closing are returned as
// help commands for the store owner to apply.
type HelpPanel struct {
	store    *help.Store
	catalog  *topics.Catalog
	renderer *render.Renderer

	viewport   viewport.Model
	layout     *WindowLayout
	statusLine *StatusLine
	keys       KeyMap

	width  int
	height int
	ready  bool

	// Set by the store subscription, consumed on the next render
	dirty        bool
	resetScroll  bool
	shownID      string
	contentLines []string
	unsubscribe  func()
}

// NewHelpPanel creates a panel bound to store
func NewHelpPanel(store *help.Store, catalog *topics.Catalog, renderer *render.Renderer) *HelpPanel {
	p := &HelpPanel{
		store:      store,
		catalog:    catalog,
		renderer:   renderer,
		viewport:   viewport.New(80, 20),
		statusLine: NewStatusLine(),
		keys:       DefaultKeyMap,
		dirty:      true,
	}
	p.unsubscribe = store.Subscribe(p.onStateChange)
	return p
}

// Close detaches the panel from the store
func (p *HelpPanel) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *HelpPanel) onStateChange(state help.State) {
	p.dirty = true
	if state.CurrentHelpID != p.shownID {
		p.resetScroll = true
	}
}

// SetSize updates the panel dimensions
func (p *HelpPanel) SetSize(width, height int) {
	p.width = width
	p.height = height

	if p.layout == nil {
		p.layout = NewWindowLayout(width, height)
	} else {
		p.layout.Update(width, height)
	}

	contentWidth, contentHeight := p.layout.GetContentDimensions()
	// One column for the scrollbar and one for a gap
	vpWidth := max(1, contentWidth-2)

	if !p.ready {
		p.viewport = viewport.New(vpWidth, contentHeight)
		p.ready = true
	} else {
		p.viewport.Width = vpWidth
		p.viewport.Height = contentHeight
	}
	p.dirty = true
}

// refresh rebuilds the viewport content from the store when it changed
func (p *HelpPanel) refresh() {
	if !p.dirty || !p.ready {
		return
	}
	p.dirty = false

	state := p.store.State()
	p.shownID = state.CurrentHelpID

	var content string
	if state.Visible() {
		if topic, ok := p.catalog.Lookup(state.CurrentHelpID); ok {
			content = p.renderer.Render(topic, p.viewport.Width, state.OpenByDefault)
		} else {
			content = p.notFoundContent(state.CurrentHelpID)
		}
	}

	p.viewport.SetContent(content)
	p.contentLines = strings.Split(ansi.Strip(content), "\n")
	if p.resetScroll {
		p.viewport.GotoTop()
		p.resetScroll = false
	}

	debug.LogToFilef("HELP PANEL: rebuilt content for %q (expanded=%v, %d lines)\n",
		state.CurrentHelpID, state.OpenByDefault, len(p.contentLines))
}

func (p *HelpPanel) notFoundContent(id string) string {
	lines := []string{
		styles.ErrorStyle.Render(fmt.Sprintf("Help topic %q not found", id)),
		"",
		styles.HelpStyle.Render("No topic file provides this id. Press q to go back."),
	}
	return strings.Join(lines, "\n")
}

// Update handles tea messages
func (p *HelpPanel) Update(msg tea.Msg) (*HelpPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	p.refresh()
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *HelpPanel) handleKey(msg tea.KeyMsg) (*HelpPanel, tea.Cmd) {
	p.refresh()
	state := p.store.State()

	switch msg.String() {
	case "j", "down":
		p.viewport.LineDown(1)
	case "k", "up":
		p.viewport.LineUp(1)
	case "ctrl+d", "J":
		p.viewport.HalfViewDown()
	case "ctrl+u", "K":
		p.viewport.HalfViewUp()
	case "pgdown", " ":
		p.viewport.ViewDown()
	case "pgup":
		p.viewport.ViewUp()
	case "g", "home":
		p.viewport.GotoTop()
	case "G", "end":
		p.viewport.GotoBottom()

	case "e", "tab":
		if !state.Visible() {
			return p, nil
		}
		return p, help.Show(state.CurrentHelpID, !state.OpenByDefault)

	case "q", "esc", "?":
		return p, help.Exit()

	case "y":
		topic, ok := p.catalog.Lookup(state.CurrentHelpID)
		if !ok {
			p.statusLine.SetTemporaryMessageWithType("Nothing to copy", MessageWarning, copyMessageDuration)
			return p, nil
		}
		p.copy(topic.Body, fmt.Sprintf("Copied source of %s", truncateString(topic.ID, 30)))

	case "Y":
		p.copy(strings.Join(p.contentLines, "\n"), "Copied rendered topic")
	}

	return p, nil
}

func (p *HelpPanel) copy(text, success string) {
	if err := clipboardWriter(text); err != nil {
		debug.LogToFilef("HELP PANEL: clipboard write failed: %v\n", err)
		p.statusLine.SetTemporaryMessageWithType("Copy failed: "+err.Error(), MessageError, copyMessageDuration)
		return
	}
	p.statusLine.SetTemporaryMessageWithType(success, MessageSuccess, copyMessageDuration)
}

// View renders the panel
func (p *HelpPanel) View() string {
	if !p.ready {
		return "Loading help..."
	}
	p.refresh()

	state := p.store.State()
	boxWidth, _ := p.layout.GetBoxDimensions()

	titleText := state.CurrentHelpID
	if topic, ok := p.catalog.Lookup(state.CurrentHelpID); ok {
		titleText = topic.Title
	}
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.TitleStyle.Render("📚 "+titleText),
		" ",
		styles.ModeBadge(state.OpenByDefault),
	)
	title = lipgloss.NewStyle().Width(boxWidth + 2).Align(lipgloss.Center).Render(title)

	body := p.viewport.View()
	if !p.viewport.AtTop() || !p.viewport.AtBottom() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			body,
			" ",
			strings.Join(p.buildScrollbarLines(p.viewport.Height), "\n"),
		)
	}
	box := p.layout.CreateStandardBox().Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, title, box, p.renderStatusLine())
}

func (p *HelpPanel) renderStatusLine() string {
	position := "TOP"
	switch {
	case p.viewport.AtTop() && p.viewport.AtBottom():
		position = "ALL"
	case p.viewport.AtBottom():
		position = "BOTTOM"
	case !p.viewport.AtTop():
		position = fmt.Sprintf("%d%%", int(p.viewport.ScrollPercent()*100))
	}

	return p.statusLine.
		SetWidth(p.width).
		SetLeft("[HELP]").
		SetRight(position).
		SetHelp(HelpText(p.keys.Down, p.keys.Expand, p.keys.Copy, p.keys.Back)).
		Render()
}

// buildScrollbarLines creates scrollbar lines to match exact height
func (p *HelpPanel) buildScrollbarLines(height int) []string {
	if height <= 0 {
		return []string{}
	}

	totalLines := max(1, len(p.contentLines))
	thumbSize := max(1, (p.viewport.Height*height)/totalLines)
	if thumbSize > height {
		thumbSize = height
	}

	maxThumbPos := height - thumbSize
	thumbPos := int(float64(maxThumbPos) * p.viewport.ScrollPercent())
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > maxThumbPos {
		thumbPos = maxThumbPos
	}

	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines = append(lines, styles.ScrollThumbStyle.Render("█"))
		} else {
			lines = append(lines, styles.ScrollTrackStyle.Render("│"))
		}
	}
	return lines
}

// ContentText returns the rendered content without styling
func (p *HelpPanel) ContentText() string {
	p.refresh()
	return strings.Join(p.contentLines, "\n")
}

// ScrollOffset returns the first visible line
func (p *HelpPanel) ScrollOffset() int {
	return p.viewport.YOffset
}

// truncateString shortens s for status messages
func truncateString(s string, maxLen int) string {
	return utils.TruncateWithEllipsis(s, maxLen)
}
