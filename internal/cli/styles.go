// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by every styled line of output.
const (
	// ColorPrimary is purple, for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, for labels and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, for recovered plaintext.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, for ciphertext and key letters.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// LabelStyle is for "Key:", "Ciphertext:" and similar prefixes.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for decrypted output.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error lines.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for non-fatal notes such as an encrypt-only key.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// ValueStyle is for ciphertext and other values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// MatrixStyle frames a printed matrix.
	MatrixStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// renderMatrix boxes the one-row-per-line String() form of a matrix.
func renderMatrix(s string) string {
	return MatrixStyle.Render(strings.TrimRight(s, "\n"))
}

// label renders "name: value" with the label muted.
func label(name, value string) string {
	return LabelStyle.Render(name+":") + " " + value
}
