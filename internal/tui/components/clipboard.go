// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/helpview/helpview-cli/internal/utils"

// clipboardWriter is replaced in tests
var clipboardWriter = utils.WriteToClipboard
