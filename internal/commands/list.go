// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/helpview/helpview-cli/internal/utils"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List help topics",
	Long: `List the available help topics.

With a query the topics are fuzzy-matched against their id, title and tags
and printed best match first.`,
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results := catalog.Search(query)
		if len(results) == 0 {
			if query == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No help topics found")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No help topics match %q\n", query)
			}
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSUMMARY")
		for _, t := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Title, utils.SingleLine(t.Summary))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
