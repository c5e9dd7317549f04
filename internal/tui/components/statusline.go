// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/helpview/helpview-cli/internal/utils"
)

// MessageType represents different types of temporary messages
type MessageType int

const (
	MessageSuccess MessageType = iota
	MessageError
	MessageInfo
	MessageWarning
)

// StatusLine represents a universal status line component
type StatusLine struct {
	width               int
	leftContent         string
	rightContent        string
	helpContent         string
	tempMessage         string
	tempMessageTime     time.Time
	tempMessageDuration time.Duration
	tempMessageColor    lipgloss.Color
}

// NewStatusLine creates a new status line component
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// SetWidth sets the width of the status line
func (s *StatusLine) SetWidth(width int) *StatusLine {
	s.width = width
	return s
}

// SetLeft sets the left content of the status line
func (s *StatusLine) SetLeft(content string) *StatusLine {
	s.leftContent = content
	return s
}

// SetRight sets the right content of the status line
func (s *StatusLine) SetRight(content string) *StatusLine {
	s.rightContent = content
	return s
}

// SetHelp sets the help content of the status line
func (s *StatusLine) SetHelp(content string) *StatusLine {
	s.helpContent = content
	return s
}

// SetTemporaryMessage sets a temporary message with color and duration
func (s *StatusLine) SetTemporaryMessage(message string, color lipgloss.Color, duration time.Duration) *StatusLine {
	s.tempMessage = message
	s.tempMessageTime = time.Now()
	s.tempMessageDuration = duration
	s.tempMessageColor = color
	return s
}

// SetTemporaryMessageWithType sets a temporary message with predefined color for message type
func (s *StatusLine) SetTemporaryMessageWithType(message string, msgType MessageType, duration time.Duration) *StatusLine {
	return s.SetTemporaryMessage(message, GetMessageColor(msgType), duration)
}

// GetMessageColor returns the color for a given message type
func GetMessageColor(msgType MessageType) lipgloss.Color {
	switch msgType {
	case MessageSuccess:
		return lipgloss.Color("46") // Green
	case MessageError:
		return lipgloss.Color("196") // Red
	case MessageInfo:
		return lipgloss.Color("33") // Blue
	case MessageWarning:
		return lipgloss.Color("226") // Yellow
	default:
		return lipgloss.Color("252")
	}
}

// HasActiveMessage returns true if there's an active temporary message
func (s *StatusLine) HasActiveMessage() bool {
	if s.tempMessage == "" {
		return false
	}
	return time.Since(s.tempMessageTime) < s.tempMessageDuration
}

// TemporaryMessage returns the active temporary message, or ""
func (s *StatusLine) TemporaryMessage() string {
	if !s.HasActiveMessage() {
		return ""
	}
	return s.tempMessage
}

// Render renders the status line
func (s *StatusLine) Render() string {
	if s.width <= 0 {
		return ""
	}

	maxPartWidth := s.width / 3
	leftContent := s.leftContent
	rightContent := s.rightContent
	if lipgloss.Width(leftContent) > maxPartWidth {
		leftContent = utils.TruncateWithEllipsis(leftContent, maxPartWidth)
	}
	if lipgloss.Width(rightContent) > maxPartWidth {
		rightContent = utils.TruncateWithEllipsis(rightContent, maxPartWidth)
	}

	leftLen := lipgloss.Width(leftContent)
	rightLen := lipgloss.Width(rightContent)

	// A temporary message takes the place of the help text
	middle := s.helpContent
	middleStyle := lipgloss.NewStyle()
	if s.HasActiveMessage() {
		middle = s.tempMessage
		middleStyle = middleStyle.Foreground(s.tempMessageColor)
	}

	var statusContent string
	available := s.width - leftLen - rightLen - 4 // Account for padding
	if middle != "" && available > 10 {
		if lipgloss.Width(middle) > available {
			middle = utils.TruncateWithEllipsis(middle, available)
		}
		padding := strings.Repeat(" ", available-lipgloss.Width(middle))
		statusContent = fmt.Sprintf("%s  %s%s  %s", leftContent, middleStyle.Render(middle), padding, rightContent)
	} else {
		padding := s.width - leftLen - rightLen
		if padding < 0 {
			padding = 0
		}
		statusContent = leftContent + strings.Repeat(" ", padding) + rightContent
	}

	contentWidth := lipgloss.Width(statusContent)
	if contentWidth < s.width {
		statusContent += strings.Repeat(" ", s.width-contentWidth)
	} else if contentWidth > s.width {
		statusContent = utils.TruncateWithEllipsis(statusContent, s.width)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Width(s.width).
		MaxWidth(s.width).
		MaxHeight(1).
		Render(statusContent)
}
