// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns help topics into terminal text.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/jellydator/ttlcache/v3"

	"github.com/helpview/helpview-cli/internal/help/topics"
)

const (
	defaultCodeStyle = "monokai"
	defaultTTL       = 10 * time.Minute
	minWidth         = 20
	ruleWidth        = 40
)

// Renderer renders topics for a given width and presentation mode.
// Output is cached per (topic, width, mode) until Invalidate.
type Renderer struct {
	codeStyle     string
	plain         bool
	collapsedHint string
	cache         *ttlcache.Cache[string, string]

	titleStyle   lipgloss.Style
	headingStyle lipgloss.Style
	summaryStyle lipgloss.Style
	hintStyle    lipgloss.Style
	ruleStyle    lipgloss.Style
	bulletStyle  lipgloss.Style
}

// Option configures a Renderer
type Option func(*Renderer)

// WithCodeStyle selects the chroma style used for fenced code blocks
func WithCodeStyle(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.codeStyle = name
		}
	}
}

// WithPlain disables colors, for output that is not a terminal
func WithPlain(plain bool) Option {
	return func(r *Renderer) {
		r.plain = plain
	}
}

// WithCollapsedHint sets the line shown under a collapsed topic
func WithCollapsedHint(hint string) Option {
	return func(r *Renderer) {
		r.collapsedHint = hint
	}
}

// New creates a renderer
func New(opts ...Option) *Renderer {
	r := &Renderer{
		codeStyle: defaultCodeStyle,
		cache: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](defaultTTL),
			ttlcache.WithCapacity[string, string](256),
		),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.plain {
		plain := lipgloss.NewStyle()
		r.titleStyle, r.headingStyle, r.summaryStyle = plain, plain, plain
		r.hintStyle, r.ruleStyle, r.bulletStyle = plain, plain, plain
	} else {
		r.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
		r.headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
		r.summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		r.hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
		r.ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		r.bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}

	go r.cache.Start()

	return r
}

// Close stops the cache expiry loop
func (r *Renderer) Close() {
	r.cache.Stop()
}

// Invalidate drops every cached rendering
func (r *Renderer) Invalidate() {
	r.cache.DeleteAll()
}

// Render renders t for width columns. Collapsed output is the title and
// summary; expanded output adds the full body.
func (r *Renderer) Render(t topics.Topic, width int, expanded bool) string {
	if width < minWidth {
		width = minWidth
	}

	key := fmt.Sprintf("%s|%s|%d|%t", t.Source, t.ID, width, expanded)
	if item := r.cache.Get(key); item != nil {
		return item.Value()
	}

	var out string
	if expanded {
		out = r.renderExpanded(t, width)
	} else {
		out = r.renderCollapsed(t, width)
	}

	r.cache.Set(key, out, ttlcache.DefaultTTL)
	return out
}

func (r *Renderer) renderCollapsed(t topics.Topic, width int) string {
	lines := []string{r.titleStyle.Render(t.Title)}
	if t.Summary != "" {
		lines = append(lines, wrap(t.Summary, width, r.summaryStyle))
	}
	if r.collapsedHint != "" {
		lines = append(lines, "", r.hintStyle.Render(r.collapsedHint))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderExpanded(t topics.Topic, width int) string {
	lines := []string{
		r.titleStyle.Render(t.Title),
		r.ruleStyle.Render(strings.Repeat("─", min(width, ruleWidth))),
	}
	if t.Summary != "" {
		lines = append(lines, wrap(t.Summary, width, r.summaryStyle), "")
	}
	lines = append(lines, r.renderBody(t, width))
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// renderBody renders the Markdown subset topics use: headings, bullets,
// fenced code and paragraphs
func (r *Renderer) renderBody(t topics.Topic, width int) string {
	var (
		out      []string
		inCode   bool
		codeLang string
		code     []string
		skipped  bool
	)

	for _, line := range strings.Split(t.Body, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				out = append(out, r.highlight(strings.Join(code, "\n"), codeLang))
				inCode, codeLang, code = false, "", nil
			} else {
				inCode = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			}
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "# "):
			heading := strings.TrimPrefix(trimmed, "# ")
			// The title is already rendered above the rule
			if !skipped && heading == t.Title {
				skipped = true
				continue
			}
			out = append(out, r.titleStyle.Render(heading))
		case strings.HasPrefix(trimmed, "#"):
			out = append(out, r.headingStyle.Render(strings.TrimSpace(strings.TrimLeft(trimmed, "#"))))
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			item := wrap(trimmed[2:], width-2, lipgloss.NewStyle())
			itemLines := strings.Split(item, "\n")
			for i, l := range itemLines {
				if i == 0 {
					itemLines[i] = r.bulletStyle.Render("•") + " " + l
				} else {
					itemLines[i] = "  " + l
				}
			}
			out = append(out, itemLines...)
		case trimmed == "":
			out = append(out, "")
		default:
			out = append(out, wrap(trimmed, width, lipgloss.NewStyle()))
		}
	}

	// Unterminated fence: render what we have
	if inCode {
		out = append(out, r.highlight(strings.Join(code, "\n"), codeLang))
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// highlight renders a code block, indented two spaces
func (r *Renderer) highlight(code, lang string) string {
	highlighted := code
	if !r.plain {
		if h, err := r.chromaHighlight(code, lang); err == nil {
			highlighted = h
		}
	}

	lines := strings.Split(strings.TrimRight(highlighted, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) chromaHighlight(code, lang string) (string, error) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(r.codeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// wrap word-wraps s to width and drops the padding lipgloss adds
func wrap(s string, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	wrapped := style.Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
