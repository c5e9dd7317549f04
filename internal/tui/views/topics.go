// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/helpview/helpview-cli/internal/help"
	"github.com/helpview/helpview-cli/internal/help/topics"
	"github.com/helpview/helpview-cli/internal/tui/components"
	"github.com/helpview/helpview-cli/internal/tui/debug"
	"github.com/helpview/helpview-cli/internal/tui/keymap"
	"github.com/helpview/helpview-cli/internal/tui/styles"
	"github.com/helpview/helpview-cli/internal/utils"
)

// TopicsView lists help topics and opens the selected one
type TopicsView struct {
	catalog       *topics.Catalog
	openByDefault bool

	items    []topics.Topic
	selected int
	offset   int

	filtering bool
	filter    textinput.Model

	layout     *components.WindowLayout
	statusLine *components.StatusLine
	keys       components.KeyMap
	navKeys    keymap.ViewKeymap
	width      int
	height     int
}

// NewTopicsView creates the topic list. openByDefault is the mode used
// when a topic is opened with enter.
func NewTopicsView(catalog *topics.Catalog, openByDefault bool) *TopicsView {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter topics"
	filter.CharLimit = 64

	v := &TopicsView{
		catalog:       catalog,
		openByDefault: openByDefault,
		filter:        filter,
		statusLine:    components.NewStatusLine(),
		keys:          components.DefaultKeyMap,
	}
	v.applyFilter()
	return v
}

// Init initializes the view
func (v *TopicsView) Init() tea.Cmd {
	debug.LogToFilef("TOPICS: Initializing with %d topics\n", len(v.items))
	return nil
}

// Update handles all messages for the topic list
func (v *TopicsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		if v.layout == nil {
			v.layout = components.NewWindowLayout(msg.Width, msg.Height)
		} else {
			v.layout.Update(msg.Width, msg.Height)
		}
		v.filter.Width = max(10, msg.Width-10)
		v.clampOffset()
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			return v.handleFilterKey(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *TopicsView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if idx, moved := components.HandleVimNavigation(msg, v.selected, len(v.items)); moved {
		v.selected = idx
		v.clampOffset()
		return v, nil
	}

	switch msg.String() {
	case "enter":
		return v, v.open(v.openByDefault)
	case "o":
		return v, v.open(true)
	case "/":
		v.filtering = true
		return v, v.filter.Focus()
	case "esc":
		if v.filter.Value() != "" {
			v.filter.SetValue("")
			v.applyFilter()
		}
		return v, nil
	case "q":
		debug.LogToFilef("TOPICS: Quit requested\n")
		return v, tea.Quit
	}

	return v, nil
}

func (v *TopicsView) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.filtering = false
		v.filter.Blur()
		v.filter.SetValue("")
		v.applyFilter()
		return v, nil
	case "enter":
		v.filtering = false
		v.filter.Blur()
		return v, nil
	case "up", "down", "ctrl+j", "ctrl+k":
		next := msg
		switch msg.String() {
		case "ctrl+j":
			next = tea.KeyMsg{Type: tea.KeyDown}
		case "ctrl+k":
			next = tea.KeyMsg{Type: tea.KeyUp}
		}
		if idx, moved := components.HandleVimNavigation(next, v.selected, len(v.items)); moved {
			v.selected = idx
			v.clampOffset()
		}
		return v, nil
	}

	var cmd tea.Cmd
	before := v.filter.Value()
	v.filter, cmd = v.filter.Update(msg)
	if v.filter.Value() != before {
		v.applyFilter()
	}
	return v, cmd
}

func (v *TopicsView) applyFilter() {
	v.items = v.catalog.Search(v.filter.Value())
	v.selected = 0
	v.offset = 0
	v.navKeys = keymap.NewDefaultKeymap()
	if len(v.items) == 0 {
		v.navKeys = keymap.NewKeymapWithDisabled(keymap.NavigationKeyOpen, keymap.NavigationKeyOpenExpanded)
	}
}

func (v *TopicsView) open(expanded bool) tea.Cmd {
	topic, ok := v.Selected()
	if !ok {
		return nil
	}
	debug.LogToFilef("TOPICS: Opening %q (expanded=%v)\n", topic.ID, expanded)
	return help.Show(topic.ID, expanded)
}

// Selected returns the highlighted topic
func (v *TopicsView) Selected() (topics.Topic, bool) {
	if v.selected < 0 || v.selected >= len(v.items) {
		return topics.Topic{}, false
	}
	return v.items[v.selected], true
}

// Items returns the topics currently listed
func (v *TopicsView) Items() []topics.Topic {
	return v.items
}

// Filter returns the current filter text
func (v *TopicsView) Filter() string {
	return v.filter.Value()
}

// Filtering reports whether the filter input has focus
func (v *TopicsView) Filtering() bool {
	return v.filtering
}

func (v *TopicsView) visibleRows() int {
	if v.layout == nil {
		return len(v.items)
	}
	_, h := v.layout.GetContentDimensions()
	// Filter line and a blank line
	return max(1, h-2)
}

func (v *TopicsView) clampOffset() {
	rows := v.visibleRows()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+rows {
		v.offset = v.selected - rows + 1
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// View renders the topic list
func (v *TopicsView) View() string {
	if v.layout == nil || v.width == 0 || v.height == 0 {
		return ""
	}
	if !v.layout.IsValidDimensions() {
		return v.layout.GetMinimalView("Help - Terminal too small")
	}

	contentWidth, _ := v.layout.GetContentDimensions()
	boxWidth, _ := v.layout.GetBoxDimensions()

	title := lipgloss.NewStyle().
		Width(boxWidth + 2).
		Align(lipgloss.Center).
		Render(styles.TitleStyle.Render("📚 Help topics"))

	var lines []string
	if v.filtering || v.filter.Value() != "" {
		lines = append(lines, styles.FilterStyle.Render(v.filter.View()))
	} else {
		lines = append(lines, styles.HelpStyle.Render("press / to filter"))
	}
	lines = append(lines, "")

	if len(v.items) == 0 {
		lines = append(lines, styles.HelpStyle.Render("No matching topics"))
	}

	end := min(len(v.items), v.offset+v.visibleRows())
	for i := v.offset; i < end; i++ {
		lines = append(lines, v.renderRow(v.items[i], i == v.selected, contentWidth))
	}

	box := v.layout.CreateStandardBox().Render(strings.Join(lines, "\n"))

	right := fmt.Sprintf("%d/%d", min(v.selected+1, len(v.items)), len(v.items))
	status := v.statusLine.
		SetWidth(v.width).
		SetLeft("[TOPICS]").
		SetRight(right).
		SetHelp(components.HelpText(v.keys.ShortHelp()...)).
		Render()

	return lipgloss.JoinVertical(lipgloss.Left, title, box, status)
}

func (v *TopicsView) renderRow(t topics.Topic, selected bool, width int) string {
	titleWidth := min(30, width/2)
	row := fmt.Sprintf("%-*s  %s",
		titleWidth, utils.TruncateWithEllipsis(t.Title, titleWidth),
		utils.SingleLine(t.Summary))
	row = utils.TruncateWithEllipsis(row, width)

	if selected {
		return styles.SelectedStyle.Width(width).Render(row)
	}
	return row
}

// Implement CoreViewKeymap interface

// IsKeyDisabled returns whether a key is disabled in this view
func (v *TopicsView) IsKeyDisabled(keyString string) bool {
	if v.filtering {
		return false
	}
	return keymap.IsKeyDisabled(v.navKeys, keyString)
}

// HandleKey claims every key except ctrl+c while the filter has focus so
// that typing never triggers global actions
func (v *TopicsView) HandleKey(keyMsg tea.KeyMsg) (handled bool, model tea.Model, cmd tea.Cmd) {
	if !v.filtering || keyMsg.String() == "ctrl+c" {
		return false, v, nil
	}
	model, cmd = v.Update(keyMsg)
	return true, model, cmd
}
