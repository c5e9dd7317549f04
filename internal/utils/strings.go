// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TruncateWithEllipsis truncates s to fit within maxWidth display cells,
// counting wide runes and emoji correctly.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		truncated := string(runes[:i]) + "..."
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}
	return "..."
}

// SingleLine collapses newlines and tabs so s fits in one table cell
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
