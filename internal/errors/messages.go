// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// FormatUserError turns err into a message fit for the terminal
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var notFound *TopicNotFoundError
	if errors.As(err, &notFound) {
		if len(notFound.Suggestions) > 0 {
			return fmt.Sprintf("%s (did you mean %s?)", notFound.Error(), strings.Join(notFound.Suggestions, ", "))
		}
		return notFound.Error()
	}

	var parseErr *TopicParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Invalid help topic file %s: %v", parseErr.Path, parseErr.Err)
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Error()
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	return err.Error()
}

// Hint returns a follow-up suggestion for err, or "" if there is none
func Hint(err error) string {
	switch {
	case IsNotFound(err):
		return "Run 'helpview list' to see available topics"
	case IsParseError(err):
		return "Topic files need a YAML frontmatter block delimited by '---'"
	case IsConfigError(err):
		return "Check $XDG_CONFIG_HOME/helpview/config.yaml or HELPVIEW_* environment variables"
	default:
		return ""
	}
}
