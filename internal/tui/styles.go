// Package tui provides the terminal user interface for a RemindMe
// session.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/remindme/internal/model"
)

// Color palette for the TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorActive  = lipgloss.Color("#3B82F6") // Blue
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// categoryColors follow the app's fixed category palette.
var categoryColors = map[string]lipgloss.Color{
	model.CategoryPersonal: lipgloss.Color("#AF52DE"),
	model.CategoryWork:     lipgloss.Color("#007AFF"),
	model.CategoryHealth:   lipgloss.Color("#34C759"),
	model.CategoryShopping: lipgloss.Color("#FF9500"),
	model.CategoryFamily:   lipgloss.Color("#FF2D55"),
}

// priorityColors follow the app's fixed priority palette.
var priorityColors = map[string]lipgloss.Color{
	model.PriorityHigh:   lipgloss.Color("#FF3B30"),
	model.PriorityMedium: lipgloss.Color("#FF9500"),
	model.PriorityLow:    lipgloss.Color("#34C759"),
}

// Base styles.
var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(ColorMuted)

	StyleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	StyleFieldLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	StyleFieldActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorActive)
)

// Box styles.
var (
	StyleListBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	StyleAlertBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(1, 2).
			MarginBottom(1)

	StyleMOTDBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorActive).
			Padding(1, 2).
			MarginBottom(1)

	StyleFormBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			MarginBottom(1)
)

// CategoryBadge renders a category with its palette color.
func CategoryBadge(category string) string {
	color, ok := categoryColors[category]
	if !ok {
		return category
	}
	return lipgloss.NewStyle().Foreground(color).Render(category)
}

// PriorityBadge renders a priority with its palette color.
func PriorityBadge(priority string) string {
	color, ok := priorityColors[priority]
	if !ok {
		return priority
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(priority)
}

// HelpBar renders the keyboard shortcut bar.
func HelpBar(pairs ...string) string {
	var out string
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			out += "  "
		}
		out += StyleHelpKey.Render(pairs[i]) + " " + StyleSubtitle.Render(pairs[i+1])
	}
	return StyleHelp.Render(out)
}
