// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package topics loads help topics and resolves topic ids to content.
package topics

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"

	"github.com/helpview/helpview-cli/internal/errors"
)

//go:embed builtin/*.md
var builtinFS embed.FS

// SourceBuiltin marks topics that ship with the binary
const SourceBuiltin = "builtin"

// Topic is a single help topic
type Topic struct {
	ID      string
	Title   string
	Summary string
	Tags    []string
	Order   int
	Body    string
	Source  string
}

type topicMatter struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Order   int      `yaml:"order"`
}

// Catalog holds topics keyed by id
type Catalog struct {
	topics map[string]Topic
}

// NewCatalog builds a catalog from topics; later duplicates win
func NewCatalog(topics ...Topic) *Catalog {
	c := &Catalog{topics: make(map[string]Topic, len(topics))}
	for _, t := range topics {
		c.Add(t)
	}
	return c
}

// Load reads the built-in topics and then every .md file in dirs.
// Topics from later sources replace earlier ones with the same id.
// Directories that do not exist are skipped.
func Load(dirs ...string) (*Catalog, error) {
	c := NewCatalog()

	if err := c.loadFS(builtinFS, "builtin", SourceBuiltin); err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			continue
		}
		if err := c.loadFS(os.DirFS(dir), ".", dir); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) loadFS(fsys fs.FS, root, source string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		displayPath := p
		if source != SourceBuiltin {
			displayPath = filepath.Join(source, filepath.FromSlash(p))
		}

		topic, err := Parse(strings.TrimSuffix(path.Base(p), path.Ext(p)), data)
		if err != nil {
			return &errors.TopicParseError{Path: displayPath, Err: err}
		}
		topic.Source = source
		c.Add(topic)
		return nil
	})
}

// Parse decodes a topic file. fallbackID is used when the frontmatter has
// no id; the first "# " heading is used when it has no title.
func Parse(fallbackID string, data []byte) (Topic, error) {
	var matter topicMatter
	rest, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		return Topic{}, err
	}

	t := Topic{
		ID:      strings.TrimSpace(matter.ID),
		Title:   strings.TrimSpace(matter.Title),
		Summary: strings.TrimSpace(matter.Summary),
		Tags:    matter.Tags,
		Order:   matter.Order,
		Body:    strings.TrimSpace(string(rest)),
	}
	if t.ID == "" {
		t.ID = fallbackID
	}
	if t.Title == "" {
		t.Title = firstHeading(t.Body)
	}
	if t.Title == "" {
		t.Title = t.ID
	}
	return t, nil
}

func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

// Add inserts or replaces t
func (c *Catalog) Add(t Topic) {
	c.topics[t.ID] = t
}

// Len returns the number of topics
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Lookup returns the topic for id
func (c *Catalog) Lookup(id string) (Topic, bool) {
	t, ok := c.topics[id]
	return t, ok
}

// Get is Lookup with a typed error for missing ids
func (c *Catalog) Get(id string) (Topic, error) {
	t, ok := c.topics[id]
	if !ok {
		return Topic{}, &errors.TopicNotFoundError{ID: id, Suggestions: c.Suggest(id, maxSuggestions)}
	}
	return t, nil
}

const maxSuggestions = 3

// Suggest returns up to limit topic ids close to id by edit distance,
// nearest first
func (c *Catalog) Suggest(id string, limit int) []string {
	if id == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		id   string
		dist int
	}
	var candidates []candidate
	needle := strings.ToLower(id)
	for known := range c.topics {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(known))
		maxLen := max(len(needle), len(known))
		if float64(dist)/float64(maxLen) < 0.4 {
			candidates = append(candidates, candidate{id: known, dist: dist})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})

	var ids []string
	for _, cand := range candidates {
		if len(ids) == limit {
			break
		}
		ids = append(ids, cand.id)
	}
	return ids
}

// List returns all topics ordered by Order, Title, then ID
func (c *Catalog) List() []Topic {
	list := make([]Topic, 0, len(c.topics))
	for _, t := range c.topics {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
	return list
}

// searchSource adapts a topic list to fuzzy.Source
type searchSource []Topic

func (s searchSource) String(i int) string {
	t := s[i]
	return t.ID + " " + t.Title + " " + strings.Join(t.Tags, " ")
}

func (s searchSource) Len() int {
	return len(s)
}

// Search ranks topics against query; an empty query returns List()
func (c *Catalog) Search(query string) []Topic {
	list := c.List()
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}

	matches := fuzzy.FindFrom(query, searchSource(list))
	results := make([]Topic, 0, len(matches))
	for _, m := range matches {
		results = append(results, list[m.Index])
	}
	return results
}
