package store

import (
	"strconv"
	"strings"

	"github.com/manav03panchal/remindme/internal/model"
	"github.com/manav03panchal/remindme/internal/validate"
)

// snapshot returns an independent copy of a reminder.
func snapshot(r *model.Reminder) *model.Reminder {
	cp := *r
	return &cp
}

// trimText normalizes reminder text before validation and storage.
func trimText(text string) string {
	return strings.TrimSpace(text)
}

// formatID renders the numeric id as its string form.
func formatID(n int64) string {
	return strconv.FormatInt(n, 10)
}

// applyPatch copies the set fields of a patch onto a reminder.
func applyPatch(r *model.Reminder, p model.Patch) {
	if p.Text != nil {
		r.Text = *p.Text
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.DueDate != nil {
		r.DueDate = *p.DueDate
	}
	if p.DueTime != nil {
		r.DueTime = *p.DueTime
	}
}

// validateFields checks the enum and format fields of a patched record.
func validateFields(r *model.Reminder) error {
	if err := validate.Category(r.Category); err != nil {
		return err
	}
	if err := validate.Priority(r.Priority); err != nil {
		return err
	}
	if err := validate.DueDate(r.DueDate); err != nil {
		return err
	}
	return validate.DueTime(r.DueTime)
}
