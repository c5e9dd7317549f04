// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TopicNotFoundError
		expected string
	}{
		{
			name:     "with id",
			err:      &TopicNotFoundError{ID: "faq-123"},
			expected: `help topic "faq-123" not found`,
		},
		{
			name:     "without id",
			err:      &TopicNotFoundError{},
			expected: "no help topic selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTopicNotFoundError_Is(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &TopicNotFoundError{ID: "a"})

	assert.True(t, errors.Is(err, &TopicNotFoundError{}), "an empty id matches any missing topic")
	assert.True(t, errors.Is(err, &TopicNotFoundError{ID: "a"}))
	assert.False(t, errors.Is(err, &TopicNotFoundError{ID: "b"}))
}

func TestTopicParseError(t *testing.T) {
	base := errors.New("yaml: line 2: did not find expected key")
	err := &TopicParseError{Path: "topics/intro.md", Err: base}

	assert.Equal(t, "failed to parse help topic topics/intro.md: yaml: line 2: did not find expected key", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		expected string
	}{
		{"with key", &ConfigError{Key: "code_style", Message: "unknown style"}, "config error for 'code_style': unknown style"},
		{"without key", &ConfigError{Message: "bad file"}, "config error: bad file"},
		{"wrapped only", &ConfigError{Err: errors.New("eof")}, "config error: eof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"plain", errors.New("boom"), ErrorTypeUnknown},
		{"not found", &TopicNotFoundError{ID: "x"}, ErrorTypeNotFound},
		{"wrapped not found", fmt.Errorf("show: %w", &TopicNotFoundError{ID: "x"}), ErrorTypeNotFound},
		{"parse", &TopicParseError{Path: "p", Err: errors.New("x")}, ErrorTypeParse},
		{"config", &ConfigError{Key: "k"}, ErrorTypeConfig},
		{"validation", &ValidationError{Field: "f"}, ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeOf(tt.err))
		})
	}

	assert.True(t, IsNotFound(&TopicNotFoundError{ID: "x"}))
	assert.False(t, IsNotFound(errors.New("x")))
	assert.True(t, IsParseError(&TopicParseError{Err: errors.New("x")}))
	assert.True(t, IsConfigError(&ConfigError{}))
}
