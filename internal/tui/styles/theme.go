// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	BaseStyle = lipgloss.NewStyle()

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63"))

	SummaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	FilterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	ExpandedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("33")).
				Padding(0, 1)

	CollapsedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("238")).
				Padding(0, 1)

	ScrollThumbStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))

	ScrollTrackStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)

// ModeBadge renders the presentation mode of an open topic
func ModeBadge(expanded bool) string {
	if expanded {
		return ExpandedBadgeStyle.Render("expanded")
	}
	return CollapsedBadgeStyle.Render("collapsed")
}
