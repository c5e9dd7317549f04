// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helpview/helpview-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage helpview configuration",
	Long: fmt.Sprintf(`Manage helpview configuration.

Keys: %s, %s, %s, %s`, config.KeyTopicsDir, config.KeyOpenByDefault, config.KeyCodeStyle, config.KeyDebug),
}

var configSetCmd = &cobra.Command{
	Use:       "set [key] [value]",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		fileCfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}
		if err := fileCfg.Set(key, value); err != nil {
			return err
		}
		if err := config.SaveConfig(fileCfg, cfgFile); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get [key]",
	Short:     "Get a configuration value",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			for _, key := range config.Keys() {
				value, _ := cfg.Get(key)
				if value == "" {
					value = "(not set)"
				}
				fmt.Fprintf(out, "%s: %s\n", key, value)
			}
			return nil
		}

		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and topics directory paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		file := cfgFile
		if file == "" {
			file = config.DefaultFile()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config: %s\ntopics: %s\n", file, config.DefaultTopicsDir())
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
