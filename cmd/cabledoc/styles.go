// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output. Chosen for dark terminal
// backgrounds with good contrast.
const (
	// ColorPrimary is teal, used for titles and headers.
	ColorPrimary = lipgloss.Color("#14B8A6")

	// ColorMuted is gray, used for secondary and de-emphasized text.
	ColorMuted = lipgloss.Color("#9CA3AF")

	// ColorSuccess is green, used for success states and checkmarks.
	ColorSuccess = lipgloss.Color("#4ADE80")

	// ColorError is red, used for errors and failures.
	ColorError = lipgloss.Color("#F87171")

	// ColorWarning is amber, used for warnings.
	ColorWarning = lipgloss.Color("#FBBF24")

	// ColorHighlight is sky blue, used for file paths and channel names.
	ColorHighlight = lipgloss.Color("#38BDF8")
)

// Base styles built from the palette. Extend with margins or padding where
// a command needs them.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// PathStyle is for file paths, channel names and other identifiers.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
