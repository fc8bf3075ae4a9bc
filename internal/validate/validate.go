// Package validate provides input validation helpers for RemindMe.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/manav03panchal/remindme/internal/errors"
	"github.com/manav03panchal/remindme/internal/model"
)

// MaxTextLength is the maximum length for reminder text.
const MaxTextLength = 200

// Text validates reminder text: non-empty after trimming, bounded length.
func Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewUserError(
			"Reminder text cannot be empty",
			"Enter a short description of the task")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return errors.NewUserErrorWithField("text", text,
			"Reminder text too long",
			"Reminder text must be 200 characters or fewer")
	}
	return nil
}

// Category validates membership in the fixed category set.
func Category(category string) error {
	if !model.IsValidCategory(category) {
		return errors.NewUserErrorWithField("category", category,
			"Invalid category",
			"Use one of: "+strings.Join(model.ValidCategories(), ", "))
	}
	return nil
}

// Priority validates membership in the fixed priority set.
func Priority(priority string) error {
	if !model.IsValidPriority(priority) {
		return errors.NewUserErrorWithField("priority", priority,
			"Invalid priority",
			"Use one of: "+strings.Join(model.ValidPriorities(), ", "))
	}
	return nil
}

// DueDate validates a YYYY-MM-DD due date. Empty is allowed (no due date).
func DueDate(dueDate string) error {
	if dueDate == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, dueDate); err != nil {
		return errors.NewUserErrorWithField("due_date", dueDate,
			"Invalid due date format",
			"Use YYYY-MM-DD, e.g. 2026-09-15")
	}
	return nil
}

// DueTime validates an HH:MM due time. Empty is allowed (defaults at
// scheduling time).
func DueTime(dueTime string) error {
	if dueTime == "" {
		return nil
	}
	if _, err := time.Parse(model.TimeLayout, dueTime); err != nil {
		return errors.NewUserErrorWithField("due_time", dueTime,
			"Invalid due time format",
			"Use 24-hour HH:MM, e.g. 09:00 or 17:30")
	}
	return nil
}

// Draft validates all fields of a new-reminder draft.
func Draft(d model.Draft) error {
	if err := Text(d.Text); err != nil {
		return err
	}
	if err := Category(d.Category); err != nil {
		return err
	}
	if err := Priority(d.Priority); err != nil {
		return err
	}
	if err := DueDate(d.DueDate); err != nil {
		return err
	}
	return DueTime(d.DueTime)
}
