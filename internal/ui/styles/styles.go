// Package styles provides shared lipgloss styles and status symbols for
// terminal output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/fikriauliya/maestro-ai/internal/instance"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for clean and running states (green)
	Success color.Color = lipgloss.Color("82")

	// Warning is used for dirty and waiting states (orange)
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// HighlightStyle for highlighting matched characters (pink, bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)

// Symbols
const (
	CurrentMarker = "*"
	DirtyMarker   = "[dirty]"
	RunningIcon   = "⚡"
	WaitingIcon   = "⏳"
)

// StatusIcon returns the icon for an instance status.
func StatusIcon(s instance.Status) string {
	if s == instance.Waiting {
		return WaitingIcon
	}
	return RunningIcon
}

// StatusStyle returns the color style for an instance status.
func StatusStyle(s instance.Status) lipgloss.Style {
	if s == instance.Waiting {
		return WarningStyle
	}
	return SuccessStyle
}
