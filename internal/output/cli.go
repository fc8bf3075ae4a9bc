package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/remindme/internal/model"
	"github.com/manav03panchal/remindme/internal/parser"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)
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

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// CategoryBadge renders a colored category label.
func (c *CLIFormatter) CategoryBadge(category string) string {
	if !c.IsColorEnabled() {
		return category
	}
	color, ok := categoryColors[category]
	if !ok {
		return category
	}
	return lipgloss.NewStyle().Foreground(color).Render(category)
}

// PriorityBadge renders a colored priority label.
func (c *CLIFormatter) PriorityBadge(priority string) string {
	if !c.IsColorEnabled() {
		return priority
	}
	color, ok := priorityColors[priority]
	if !ok {
		return priority
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(priority)
}

// ReminderLine renders one reminder as a single display line.
func (c *CLIFormatter) ReminderLine(r *model.Reminder, now time.Time) string {
	check := "[ ]"
	if r.Completed {
		check = "[x]"
	}

	text := r.Text
	if r.Completed && c.IsColorEnabled() {
		text = styleDone.Render(text)
	}

	parts := []string{
		fmt.Sprintf("%s %s", check, text),
		fmt.Sprintf("(%s, %s)", c.CategoryBadge(r.Category), c.PriorityBadge(r.Priority)),
	}

	if r.HasDueDate() {
		due := parser.FormatDue(r.DueDate, r.DueTime, now)
		if !r.Completed && model.IsOverdue(r.DueDate, now) {
			if c.IsColorEnabled() {
				due = styleError.Render(due + " · overdue")
			} else {
				due += " · overdue"
			}
		} else if !r.Completed && model.IsDueToday(r.DueDate, now) {
			if c.IsColorEnabled() {
				due = styleWarning.Render(due)
			}
		}
		parts = append(parts, "due "+due)
	}

	return strings.Join(parts, " ")
}

// PrintReminderList prints reminders in display order with a summary.
func (c *CLIFormatter) PrintReminderList(reminders []*model.Reminder, now time.Time) {
	if len(reminders) == 0 {
		c.Muted("No reminders.")
		return
	}

	var pending int
	for _, r := range reminders {
		if !r.Completed {
			pending++
		}
		c.Println("  " + c.ReminderLine(r, now))
	}

	c.Println()
	summary := fmt.Sprintf("%d reminders, %d pending", len(reminders), pending)
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(summary))
	} else {
		c.Println(summary)
	}
}
