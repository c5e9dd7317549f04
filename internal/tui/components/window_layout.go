// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/helpview/helpview-cli/internal/tui/debug"
)

// WindowLayout provides consistent window sizing and border calculations for all views
type WindowLayout struct {
	terminalWidth  int
	terminalHeight int

	// Calculated dimensions
	contentWidth  int
	contentHeight int
	boxWidth      int
	boxHeight     int

	// Layout constants
	statusLineHeight int
	titleHeight      int
	borderMargin     int
}

// NewWindowLayout creates a new window layout calculator
func NewWindowLayout(terminalWidth, terminalHeight int) *WindowLayout {
	layout := &WindowLayout{
		terminalWidth:    terminalWidth,
		terminalHeight:   terminalHeight,
		statusLineHeight: 1,
		titleHeight:      1,
		borderMargin:     2, // Lipgloss boxes render 2 cells wider than set width
	}

	layout.calculateDimensions()
	return layout
}

// calculateDimensions computes all the derived dimensions
func (w *WindowLayout) calculateDimensions() {
	w.boxWidth = w.terminalWidth - w.borderMargin
	w.boxHeight = w.terminalHeight - w.statusLineHeight - w.titleHeight - w.borderMargin

	// Content is inside the border and horizontal padding
	w.contentWidth = w.boxWidth - 2
	w.contentHeight = w.boxHeight

	if w.boxWidth < 10 {
		w.boxWidth = 10
	}
	if w.boxHeight < 1 {
		w.boxHeight = 1
	}
	if w.contentWidth < 5 {
		w.contentWidth = 5
	}
	if w.contentHeight < 1 {
		w.contentHeight = 1
	}

	debug.LogToFilef("LAYOUT: Terminal %dx%d -> Box %dx%d -> Content %dx%d\n",
		w.terminalWidth, w.terminalHeight,
		w.boxWidth, w.boxHeight,
		w.contentWidth, w.contentHeight)
}

// GetBoxDimensions returns the box width and height for lipgloss container
func (w *WindowLayout) GetBoxDimensions() (width, height int) {
	return w.boxWidth, w.boxHeight
}

// GetContentDimensions returns the content area dimensions (inside the box)
func (w *WindowLayout) GetContentDimensions() (width, height int) {
	return w.contentWidth, w.contentHeight
}

// CreateStandardBox creates a lipgloss box style with standard dimensions and border
func (w *WindowLayout) CreateStandardBox() lipgloss.Style {
	return lipgloss.NewStyle().
		Width(w.boxWidth).
		Height(w.boxHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
}

// IsValidDimensions checks if the terminal is large enough for the UI
func (w *WindowLayout) IsValidDimensions() bool {
	return w.terminalWidth >= 20 && w.terminalHeight >= 6
}

// GetMinimalView returns a minimal view for very small terminals
func (w *WindowLayout) GetMinimalView(message string) string {
	if w.terminalWidth <= 2 {
		return ""
	}
	if len(message) > w.terminalWidth-2 {
		message = message[:w.terminalWidth-2]
	}
	return message
}

// Update recalculates dimensions when terminal size changes
func (w *WindowLayout) Update(terminalWidth, terminalHeight int) {
	w.terminalWidth = terminalWidth
	w.terminalHeight = terminalHeight
	w.calculateDimensions()
}
