// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

// Environment variable constants
const (
	// EnvPrefix is the viper prefix for every HELPVIEW_* variable
	EnvPrefix = "HELPVIEW"

	// EnvTopicsDir points at an extra directory of topic files
	EnvTopicsDir = "HELPVIEW_TOPICS_DIR"

	// EnvOpenByDefault sets whether topics open expanded
	EnvOpenByDefault = "HELPVIEW_OPEN_BY_DEFAULT"

	// EnvCodeStyle selects the chroma style for code blocks
	EnvCodeStyle = "HELPVIEW_CODE_STYLE"

	// EnvDebug is the environment variable for debug mode
	EnvDebug = "HELPVIEW_DEBUG"

	// EnvDebugLog enables the debug file log (any value, or a path)
	EnvDebugLog = "HELPVIEW_DEBUG_LOG"
)
