// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"github.com/helpview/helpview-cli/internal/commands"
)

func main() {
	commands.Execute()
}
