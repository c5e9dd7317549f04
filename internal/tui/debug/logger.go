// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/helpview/helpview-cli/internal/config"
)

const envDebugLog = config.EnvDebugLog

// Enabled reports whether debug logging is switched on
func Enabled() bool {
	debugEnv := os.Getenv(envDebugLog)
	return debugEnv != "" && debugEnv != "0" && debugEnv != "false"
}

// LogPath returns the debug log path, configurable via environment variable
func LogPath() string {
	debugEnv := os.Getenv(envDebugLog)

	// If it's a path (contains / or \), use it as the log path
	if debugEnv != "" && (filepath.IsAbs(debugEnv) || filepath.Dir(debugEnv) != ".") {
		return debugEnv
	}

	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		stateDir = xdg.StateHome
	}

	logsDir := filepath.Join(stateDir, "helpview")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return filepath.Join(os.TempDir(), "helpview_debug.log")
	}
	return filepath.Join(logsDir, "debug.log")
}

// LogToFile writes a debug message to the debug log file
func LogToFile(message string) {
	if !Enabled() {
		return
	}

	if f, err := os.OpenFile(LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
		defer func() { _ = f.Close() }()
		_, _ = f.WriteString(message)
	}
}

// LogToFilef writes a formatted debug message to the debug log file
func LogToFilef(format string, args ...interface{}) {
	LogToFile(fmt.Sprintf(format, args...))
}

// LogToFileWithTimestamp writes a debug message with timestamp prefix
func LogToFileWithTimestamp(message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	LogToFile(fmt.Sprintf("[%s] %s", timestamp, message))
}

// LogToFileWithTimestampf writes a formatted debug message with timestamp prefix
func LogToFileWithTimestampf(format string, args ...interface{}) {
	LogToFileWithTimestamp(fmt.Sprintf(format, args...))
}
