// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/helpview/helpview-cli/internal/help/topics"
)

var sampleTopic = topics.Topic{
	ID:      "faq-123",
	Title:   "Sample",
	Summary: "A short summary.",
	Body: strings.Join([]string{
		"# Sample",
		"",
		"Intro paragraph.",
		"",
		"## Section",
		"- first item",
		"```go",
		"func main() {}",
		"```",
	}, "\n"),
}

func TestRender_Collapsed(t *testing.T) {
	r := New(WithPlain(true), WithCollapsedHint("press e to expand"))
	defer r.Close()

	out := r.Render(sampleTopic, 60, false)

	assert.Contains(t, out, "Sample")
	assert.Contains(t, out, "A short summary.")
	assert.Contains(t, out, "press e to expand")
	assert.NotContains(t, out, "Intro paragraph.")
}

func TestRender_Expanded(t *testing.T) {
	r := New(WithPlain(true))
	defer r.Close()

	out := r.Render(sampleTopic, 60, true)

	assert.Contains(t, out, "Intro paragraph.")
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "• first item")
	assert.Contains(t, out, "  func main() {}")
	assert.NotContains(t, out, "```")
	assert.Equal(t, 1, strings.Count(out, "Sample"), "title heading is not repeated")
}

func TestRender_Wraps(t *testing.T) {
	r := New(WithPlain(true))
	defer r.Close()

	topic := topics.Topic{
		ID:    "long",
		Title: "Long",
		Body:  strings.Repeat("word ", 40),
	}
	out := r.Render(topic, 30, true)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30, "line %q", line)
	}
}

func TestRender_MinimumWidth(t *testing.T) {
	r := New(WithPlain(true))
	defer r.Close()

	assert.Equal(t, r.Render(sampleTopic, 1, true), r.Render(sampleTopic, minWidth, true))
}

func TestRender_CodeHighlighting(t *testing.T) {
	r := New(WithCodeStyle("monokai"))
	defer r.Close()

	out := r.Render(sampleTopic, 60, true)
	assert.Contains(t, out, "\x1b[", "code is colored by chroma")
	assert.Contains(t, out, "main")
}

func TestRender_Cache(t *testing.T) {
	r := New(WithPlain(true))
	defer r.Close()

	first := r.Render(sampleTopic, 60, true)
	assert.Equal(t, 1, r.cache.Len())

	// Same key returns the cached rendering even if the topic changed
	changed := sampleTopic
	changed.Body = "different"
	assert.Equal(t, first, r.Render(changed, 60, true))

	r.Render(sampleTopic, 60, false)
	assert.Equal(t, 2, r.cache.Len())

	r.Invalidate()
	assert.Equal(t, 0, r.cache.Len())
	assert.Contains(t, r.Render(changed, 60, true), "different")
}
