// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform filename compatibility checks.
package platform

import "strings"

// windowsReservedNames are base filenames Windows refuses to create,
// regardless of extension. A channel named "con" would make its definition
// file and preview image unwritable on Windows checkouts.
var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name collides with a Windows
// reserved device name. Extensions are ignored, matching Windows behavior.
func IsWindowsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.LastIndex(upper, "."); idx != -1 {
		upper = upper[:idx]
	}
	return windowsReservedNames[upper]
}
