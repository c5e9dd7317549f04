// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helpview/helpview-cli/internal/config"
	"github.com/helpview/helpview-cli/internal/errors"
	"github.com/helpview/helpview-cli/internal/help/render"
	"github.com/helpview/helpview-cli/internal/help/topics"
	"github.com/helpview/helpview-cli/pkg/version"
)

var (
	cfg     *config.Config
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "helpview",
	Short: "Browse help topics in the terminal",
	Long: `helpview shows help topics in an interactive terminal viewer.

Topics ship with the binary and can be extended with Markdown files in
$XDG_CONFIG_HOME/helpview/topics or the directory set by topics_dir.
Run without a subcommand to open the viewer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		if debug {
			cfg.Debug = true
		}
		if cfg.Debug && os.Getenv(config.EnvDebugLog) == "" {
			// Route the TUI debug logger to its default file
			_ = os.Setenv(config.EnvDebugLog, "1")
		}

		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.FormatUserError(err))

		if hint := errors.Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "\nHint: %s\n", hint)
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/helpview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log")
	addTUIFlags(rootCmd)

	rootCmd.Version = version.GetVersion()

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetBuildInfo())
	},
}

// loadCatalog loads built-in topics plus the configured directories
func loadCatalog() (*topics.Catalog, error) {
	catalog, err := topics.Load(cfg.TopicDirs()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}
	return catalog, nil
}

func newRenderer(plain bool, collapsedHint string) *render.Renderer {
	return render.New(
		render.WithCodeStyle(cfg.CodeStyle),
		render.WithPlain(plain),
		render.WithCollapsedHint(collapsedHint),
	)
}
