// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/helpview/helpview-cli/internal/tui/components"
	"github.com/helpview/helpview-cli/internal/tui/keymap"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the help viewer's key bindings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Global keys:")
		mappings := keymap.NewCoreKeyRegistry().GetAllMappings()
		var global []string
		for k, m := range mappings {
			if keymap.IsGlobalAction(m.Action) {
				global = append(global, k)
			}
		}
		sort.Strings(global)
		for _, k := range global {
			fmt.Fprintf(out, "  %-8s %s\n", k, mappings[k].Help)
		}

		fmt.Fprintln(out, "\nViewer keys:")
		h := help.New()
		h.ShowAll = true
		fmt.Fprintln(out, h.View(components.DefaultKeyMap))
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
