// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeParse
	ErrorTypeConfig
	ErrorTypeValidation
)

// TopicNotFoundError is returned when a help topic id has no content
type TopicNotFoundError struct {
	ID string
	// Known ids close to ID, nearest first
	Suggestions []string
}

func (e *TopicNotFoundError) Error() string {
	if e.ID == "" {
		return "no help topic selected"
	}
	return fmt.Sprintf("help topic %q not found", e.ID)
}

func (e *TopicNotFoundError) Is(target error) bool {
	t, ok := target.(*TopicNotFoundError)
	if !ok {
		return false
	}
	return t.ID == "" || t.ID == e.ID
}

// TopicParseError is returned when a topic file cannot be decoded
type TopicParseError struct {
	Path string
	Err  error
}

func (e *TopicParseError) Error() string {
	return fmt.Sprintf("failed to parse help topic %s: %v", e.Path, e.Err)
}

func (e *TopicParseError) Unwrap() error {
	return e.Err
}

type ConfigError struct {
	Key     string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Key != "" {
		return fmt.Sprintf("config error for '%s': %s", e.Key, msg)
	}
	return fmt.Sprintf("config error: %s", msg)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

var ErrNoTerminal = errors.New("no interactive terminal available")

// TypeOf classifies err
func TypeOf(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}

	var notFound *TopicNotFoundError
	if errors.As(err, &notFound) {
		return ErrorTypeNotFound
	}

	var parseErr *TopicParseError
	if errors.As(err, &parseErr) {
		return ErrorTypeParse
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ErrorTypeConfig
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ErrorTypeValidation
	}

	return ErrorTypeUnknown
}

func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsParseError(err error) bool {
	return TypeOf(err) == ErrorTypeParse
}

func IsConfigError(err error) bool {
	return TypeOf(err) == ErrorTypeConfig
}
