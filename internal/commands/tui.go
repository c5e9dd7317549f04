// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/helpview/helpview-cli/internal/tui"
)

var (
	tuiTopic    string
	tuiExpanded bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive help viewer",
	Long: `Launch the interactive help viewer.

The viewer provides:
- A fuzzy-filterable list of help topics
- Collapsed and expanded presentation of each topic (e or tab toggles)
- Vim-style keybindings for scrolling
- Copying a topic's source or rendered text with y and Y`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	addTUIFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&tuiTopic, "topic", "t", "", "open this topic at start")
	cmd.Flags().BoolVarP(&tuiExpanded, "expanded", "e", false, "open --topic expanded (default from open_by_default)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	expanded := cfg.OpenByDefault
	if cmd.Flags().Changed("expanded") {
		expanded = tuiExpanded
	}

	var opts []tui.Option
	if tuiTopic != "" {
		if _, err := catalog.Get(tuiTopic); err != nil {
			return err
		}
		opts = append(opts, tui.WithInitialTopic(tuiTopic, expanded))
	}

	renderer := newRenderer(false, "press e to expand")
	defer renderer.Close()

	app := tui.NewApp(catalog, renderer, cfg.OpenByDefault, opts...)
	return app.Run()
}
