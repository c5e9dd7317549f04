// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpview/helpview-cli/internal/config"
)

func TestLogToFile(t *testing.T) {
	t.Run("disabled writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debug.log")
		t.Setenv(envDebugLog, "0")

		assert.False(t, Enabled())
		LogToFile("hello\n")
		assert.NoFileExists(t, path)
	})

	t.Run("path value enables and targets file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "debug.log")
		t.Setenv(envDebugLog, path)

		assert.True(t, Enabled())
		assert.Equal(t, path, LogPath())

		LogToFilef("show %s\n", "faq-123")
		LogToFileWithTimestampf("exit %d\n", 1)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "show faq-123\n")
		assert.Regexp(t, `\[\d{4}-\d{2}-\d{2} [\d:.]+\] exit 1`, string(data))
	})

	t.Run("flag value uses state dir", func(t *testing.T) {
		stateDir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", stateDir)
		t.Setenv(envDebugLog, "1")

		assert.Equal(t, filepath.Join(stateDir, "helpview", "debug.log"), LogPath())
	})
}

func TestLogToFile_SharesConfigEnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(config.EnvDebugLog, path)

	require.True(t, Enabled())
	LogToFile("from config variable\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from config variable\n", string(data))
}
