// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpview/helpview-cli/internal/config"
	"github.com/helpview/helpview-cli/internal/errors"
	"github.com/helpview/helpview-cli/internal/help/topics"
)

// isolateEnv points the config home at a temp dir and clears HELPVIEW_*
// variables. It returns the config home.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	for _, env := range []string{config.EnvTopicsDir, config.EnvOpenByDefault, config.EnvCodeStyle, config.EnvDebug, config.EnvDebugLog} {
		t.Setenv(env, "")
	}
	return home
}

// execute runs the root command with args and returns what it printed.
// tty sets whether stdout is treated as a terminal.
func execute(t *testing.T, tty bool, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	cfgFile = ""
	debug = false

	origTTY := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() { isTerminal = origTTY })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	return execute(t, false, args...)
}

// resetFlags clears flag values and positional args left over from a
// previous Execute. pflag keeps the old args when parsing an empty list,
// so an explicit "--" parse empties them.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	_ = cmd.Flags().Parse([]string{"--"})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRootCommand_HasExpectedCommands(t *testing.T) {
	expected := []string{"version", "tui", "list", "show", "keys", "config", "docs", "completion"}

	actual := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		actual[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, actual[name], "missing command %q", name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "helpview ")
	assert.Contains(t, out, "Git Commit:")
}

func TestListCommand(t *testing.T) {
	t.Run("all topics in order", func(t *testing.T) {
		out, err := executeCommand(t, "list")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Greater(t, len(lines), 1)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.True(t, strings.HasPrefix(lines[1], "getting-started"))
		assert.Contains(t, out, "faq")
	})

	t.Run("fuzzy query", func(t *testing.T) {
		out, err := executeCommand(t, "list", "faq")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Greater(t, len(lines), 1)
		assert.True(t, strings.HasPrefix(lines[1], "faq"))
	})

	t.Run("no match", func(t *testing.T) {
		out, err := executeCommand(t, "list", "zzzzqqq")
		require.NoError(t, err)
		assert.Contains(t, out, `No help topics match "zzzzqqq"`)
	})
}

func TestShowCommand(t *testing.T) {
	t.Run("collapsed by default", func(t *testing.T) {
		out, err := executeCommand(t, "show", "faq")
		require.NoError(t, err)
		assert.Contains(t, out, "Frequently asked questions")
		assert.Contains(t, out, "use --expanded to show the full topic")
		assert.NotContains(t, out, "Why does a topic show")
	})

	t.Run("expanded", func(t *testing.T) {
		out, err := executeCommand(t, "show", "faq", "--expanded")
		require.NoError(t, err)
		assert.Contains(t, out, "Why does a topic show")
		assert.NotContains(t, out, "\x1b[", "plain output when stdout is not a terminal")
	})

	t.Run("open_by_default from environment", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv(config.EnvOpenByDefault, "true")
		out, err := execute(t, false, "show", "faq")
		require.NoError(t, err)
		assert.Contains(t, out, "Why does a topic show")
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := executeCommand(t, "show", "nope")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("no id without terminal", func(t *testing.T) {
		_, err := executeCommand(t, "show")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNoTerminal)
	})

	t.Run("picker on terminal", func(t *testing.T) {
		origPick := pickTopic
		pickTopic = func(list []topics.Topic) (topics.Topic, error) {
			for _, tp := range list {
				if tp.ID == "navigation" {
					return tp, nil
				}
			}
			return list[0], nil
		}
		t.Cleanup(func() { pickTopic = origPick })

		origWidth := terminalWidth
		terminalWidth = func() int { return 60 }
		t.Cleanup(func() { terminalWidth = origWidth })

		isolateEnv(t)
		out, err := execute(t, true, "show")
		require.NoError(t, err)
		assert.Contains(t, out, "Navigation")
	})
}

func TestShowCommand_UserTopicsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy.md"), []byte(`---
title: Deploying
summary: Ship it.
---
Run the deploy script.
`), 0o644))

	isolateEnv(t)
	t.Setenv(config.EnvTopicsDir, dir)
	out, err := execute(t, false, "show", "deploy", "--expanded")
	require.NoError(t, err)
	assert.Contains(t, out, "Deploying")
	assert.Contains(t, out, "Run the deploy script.")
}

func TestConfigCommand(t *testing.T) {
	home := isolateEnv(t)

	out, err := execute(t, false, "config", "set", "open_by_default", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "open_by_default set to true")
	assert.FileExists(t, filepath.Join(home, "helpview", "config.yaml"))

	out, err = execute(t, false, "config", "get", "open_by_default")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, false, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "code_style: monokai")
	assert.Contains(t, out, "topics_dir: (not set)")

	_, err = execute(t, false, "config", "set", "open_by_default", "maybe")
	assert.Error(t, err)

	_, err = execute(t, false, "config", "set", "colour", "red")
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))

	_, err = execute(t, false, "config", "set", "code_style", "not-a-style")
	assert.Error(t, err)

	out, err = execute(t, false, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "helpview", "config.yaml"))
}

func TestConfigSet_KeepsEnvironmentOutOfFile(t *testing.T) {
	home := isolateEnv(t)
	t.Setenv(config.EnvCodeStyle, "dracula")

	_, err := execute(t, false, "config", "set", "debug", "true")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, "helpview", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug: true")
	assert.NotContains(t, string(data), "dracula")
	assert.Contains(t, string(data), "code_style: monokai")
}

func TestExecute_PositionalArgsDoNotCarryOver(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, false, "show", "nope")
	require.True(t, errors.IsNotFound(err))

	_, err = execute(t, false, "show")
	assert.ErrorIs(t, err, errors.ErrNoTerminal)

	_, err = execute(t, false, "config", "get", "open_by_default")
	require.NoError(t, err)

	out, err := execute(t, false, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "code_style: monokai")
}

func TestKeysCommand(t *testing.T) {
	out, err := executeCommand(t, "keys")
	require.NoError(t, err)

	globalPart, viewerPart, found := strings.Cut(out, "Viewer keys:")
	require.True(t, found)

	assert.Contains(t, globalPart, "ctrl+c")
	assert.Contains(t, globalPart, "force quit")
	assert.Contains(t, globalPart, "key help")
	assert.NotContains(t, globalPart, "enter", "view-specific keys are not global")

	for _, desc := range []string{"move up", "page down", "go to bottom", "open expanded", "expand/collapse", "copy view", "force quit"} {
		assert.Contains(t, viewerPart, desc)
	}
}

func TestDocsMarkdownCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "docs", "markdown", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Markdown documentation generated")
	assert.FileExists(t, filepath.Join(dir, "helpview.md"))
	assert.FileExists(t, filepath.Join(dir, "helpview_show.md"))
}
