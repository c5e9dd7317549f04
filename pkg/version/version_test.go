// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testVersion = "1.0.0"

func withBuildInfo(t *testing.T, mainVersion string, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: mainVersion}}, ok
	}
	t.Cleanup(func() { readBuildInfo = orig })
}

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name        string
		ldflags     string
		mainVersion string
		ok          bool
		want        string
	}{
		{name: "ldflags win", ldflags: testVersion, mainVersion: "v0.9.0", ok: true, want: testVersion},
		{name: "module version", ldflags: "dev", mainVersion: "v0.9.0", ok: true, want: "v0.9.0"},
		{name: "devel build", ldflags: "dev", mainVersion: "(devel)", ok: true, want: "dev"},
		{name: "no build info", ldflags: "dev", ok: false, want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.ldflags)
			withBuildInfo(t, tt.mainVersion, tt.ok)
			assert.Equal(t, tt.want, GetVersion())
		})
	}
}

func TestGetBuildInfo(t *testing.T) {
	withVersion(t, testVersion)
	origCommit, origDate := GitCommit, BuildDate
	GitCommit = "abc123"
	BuildDate = "2024-01-01"
	t.Cleanup(func() { GitCommit, BuildDate = origCommit, origDate })

	info := GetBuildInfo()

	assert.Contains(t, info, "helpview "+testVersion)
	assert.Contains(t, info, "Git Commit: abc123")
	assert.Contains(t, info, "Build Date: 2024-01-01")
	assert.Contains(t, info, "Go Version:")
	assert.Contains(t, info, "OS/Arch:")
}
