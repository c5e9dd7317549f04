// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/helpview/helpview-cli/internal/errors"
	"github.com/helpview/helpview-cli/internal/help/render"
	"github.com/helpview/helpview-cli/internal/help/topics"
)

const defaultShowWidth = 80

var showExpanded bool

// isTerminal and terminalWidth are replaced in tests
var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
	terminalWidth = func() int {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || w <= 0 {
			return defaultShowWidth
		}
		return w
	}
	pickTopic = fuzzyPickTopic
)

var showCmd = &cobra.Command{
	Use:   "show [topic-id]",
	Short: "Print a help topic",
	Long: `Print one help topic to stdout.

Topics print collapsed (title and summary) unless --expanded is given or
open_by_default is set. Without a topic id an interactive picker is shown
when stdout is a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showExpanded, "expanded", "e", false, "print the full topic")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	tty := isTerminal()

	var topic topics.Topic
	if len(args) == 1 {
		topic, err = catalog.Get(args[0])
		if err != nil {
			return err
		}
	} else {
		if !tty {
			return fmt.Errorf("a topic id is required when not running in a terminal: %w", errors.ErrNoTerminal)
		}
		topic, err = pickTopic(catalog.List())
		if err != nil {
			return err
		}
	}

	expanded := cfg.OpenByDefault
	if cmd.Flags().Changed("expanded") {
		expanded = showExpanded
	}

	width := defaultShowWidth
	if tty {
		width = terminalWidth()
	}

	renderer := newRenderer(!tty, "use --expanded to show the full topic")
	defer renderer.Close()

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(topic, width, expanded))
	return nil
}

// fuzzyPickTopic lets the user choose a topic with a full-screen finder
func fuzzyPickTopic(list []topics.Topic) (topics.Topic, error) {
	if len(list) == 0 {
		return topics.Topic{}, fmt.Errorf("no help topics available")
	}

	preview := render.New(render.WithCodeStyle(cfg.CodeStyle))
	defer preview.Close()

	idx, err := fuzzyfinder.Find(
		list,
		func(i int) string {
			return list[i].Title
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, _ int) string {
			if i == -1 {
				return ""
			}
			return preview.Render(list[i], w-4, true)
		}),
		fuzzyfinder.WithHeader("Select a help topic (↑↓ to navigate, Enter to open, Esc to cancel)"),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return topics.Topic{}, fmt.Errorf("topic selection cancelled")
		}
		return topics.Topic{}, fmt.Errorf("topic selection failed: %w", err)
	}

	return list[idx], nil
}
