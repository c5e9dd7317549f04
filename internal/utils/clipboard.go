// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.design/x/clipboard"
)

const clipboardWriteTimeout = 2 * time.Second

var (
	clipboardOnce   sync.Once
	nativeAvailable bool
)

// initClipboard probes the native clipboard once. clipboard.Init panics
// in builds without cgo; that leaves the command fallback in charge.
func initClipboard() {
	clipboardOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				nativeAvailable = false
			}
		}()
		nativeAvailable = clipboard.Init() == nil
	})
}

// WriteToClipboard writes text to the system clipboard, using the native
// clipboard when available and an OS command otherwise
func WriteToClipboard(text string) error {
	initClipboard()

	if nativeAvailable {
		done := clipboard.Write(clipboard.FmtText, []byte(text))
		select {
		case <-done:
			return nil
		case <-time.After(clipboardWriteTimeout):
			return fmt.Errorf("clipboard write timeout")
		}
	}

	return writeWithCommand(text)
}

// clipboardCommand picks the copy command for goos. The returned args
// are passed to the command and text is fed on stdin.
func clipboardCommand(goos string, getenv func(string) string) (name string, args []string, err error) {
	switch goos {
	case "darwin":
		return "pbcopy", nil, nil
	case "windows":
		return "clip", nil, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil, nil
		}
		return "xclip", []string{"-selection", "clipboard"}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func writeWithCommand(text string) error {
	name, args, err := clipboardCommand(runtime.GOOS, os.Getenv)
	if err != nil {
		return err
	}

	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no clipboard tool found (%s): %w", name, err)
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
