package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/remindme/internal/model"
)

// Form field indexes.
const (
	fieldText = iota
	fieldDue
	fieldCategory
	fieldPriority
	fieldCount
)

// formModel is the add/edit reminder form. Text fields take typed
// input; the category and priority fields cycle through the fixed sets
// with the arrow keys.
type formModel struct {
	editID   string // empty for add
	text     string
	due      string // natural language due expression
	category int    // index into model.ValidCategories()
	priority int    // index into model.ValidPriorities()
	field    int
	errText  string
}

// newAddForm returns a blank form with the session defaults.
func newAddForm(defaultCategory, defaultPriority string) formModel {
	f := formModel{
		category: indexOf(model.ValidCategories(), defaultCategory, 0),
		priority: indexOf(model.ValidPriorities(), defaultPriority, 1),
	}
	return f
}

// newEditForm returns a form pre-filled from an existing reminder.
func newEditForm(r *model.Reminder) formModel {
	due := r.DueDate
	if due != "" && r.DueTime != "" {
		due = due + " " + r.DueTime
	}
	return formModel{
		editID:   r.ID,
		text:     r.Text,
		due:      due,
		category: indexOf(model.ValidCategories(), r.Category, 0),
		priority: indexOf(model.ValidPriorities(), r.Priority, 1),
	}
}

func indexOf(values []string, v string, fallback int) int {
	for i, c := range values {
		if c == v {
			return i
		}
	}
	return fallback
}

// Category returns the selected category value.
func (f *formModel) Category() string {
	return model.ValidCategories()[f.category]
}

// Priority returns the selected priority value.
func (f *formModel) Priority() string {
	return model.ValidPriorities()[f.priority]
}

// handleKey updates the form state. It reports whether the form was
// submitted.
func (f *formModel) handleKey(msg tea.KeyMsg) (submitted bool) {
	switch msg.String() {
	case "tab", "down":
		f.field = (f.field + 1) % fieldCount
	case "shift+tab", "up":
		f.field = (f.field + fieldCount - 1) % fieldCount
	case "enter":
		return true
	case "left":
		f.cycle(-1)
	case "right":
		f.cycle(1)
	case "backspace":
		f.edit(func(s string) string {
			if s == "" {
				return s
			}
			runes := []rune(s)
			return string(runes[:len(runes)-1])
		})
	default:
		if msg.Type == tea.KeyRunes {
			typed := string(msg.Runes)
			f.edit(func(s string) string { return s + typed })
		} else if msg.Type == tea.KeySpace {
			f.edit(func(s string) string { return s + " " })
		}
	}
	return false
}

// cycle moves an enum field by delta.
func (f *formModel) cycle(delta int) {
	switch f.field {
	case fieldCategory:
		n := len(model.ValidCategories())
		f.category = (f.category + delta + n) % n
	case fieldPriority:
		n := len(model.ValidPriorities())
		f.priority = (f.priority + delta + n) % n
	}
}

// edit applies fn to the active text field.
func (f *formModel) edit(fn func(string) string) {
	switch f.field {
	case fieldText:
		f.text = fn(f.text)
	case fieldDue:
		f.due = fn(f.due)
	}
}

// View renders the form.
func (f *formModel) View() string {
	title := "New Reminder"
	if f.editID != "" {
		title = "Edit Reminder"
	}

	rows := []string{
		StyleTitle.Render(title),
		f.renderText(fieldText, "Text", f.text),
		f.renderText(fieldDue, "Due", f.due),
		f.renderEnum(fieldCategory, "Category", CategoryBadge(f.Category())),
		f.renderEnum(fieldPriority, "Priority", PriorityBadge(f.Priority())),
	}

	if f.errText != "" {
		rows = append(rows, StyleError.Render(f.errText))
	}

	rows = append(rows, HelpBar(
		"tab", "next field",
		"←/→", "change value",
		"enter", "save",
		"esc", "cancel",
	))

	return StyleFormBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (f *formModel) renderText(field int, label, value string) string {
	cursor := ""
	style := StyleFieldLabel
	if f.field == field {
		cursor = StyleCursor.Render("▌")
		style = StyleFieldActive
	}
	return fmt.Sprintf("%s %s%s", style.Render(label+":"), value, cursor)
}

func (f *formModel) renderEnum(field int, label, value string) string {
	style := StyleFieldLabel
	marker := " "
	if f.field == field {
		style = StyleFieldActive
		marker = StyleCursor.Render("‹›")
	}
	return fmt.Sprintf("%s %s %s", style.Render(label+":"), value, strings.TrimRight(marker, " "))
}
