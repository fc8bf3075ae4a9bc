// Package view derives the displayed reminder list from the store
// snapshot: category/priority filtering and the fixed display sort.
// It never mutates its input.
package view

import (
	"sort"

	"github.com/manav03panchal/remindme/internal/model"
)

// All is the wildcard filter value.
const All = "all"

// Filter selects which reminders are displayed.
type Filter struct {
	Category string
	Priority string
}

// NewFilter returns a filter matching everything.
func NewFilter() Filter {
	return Filter{Category: All, Priority: All}
}

// Matches reports whether a reminder passes the filter.
func (f Filter) Matches(r *model.Reminder) bool {
	if f.Category != All && f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Priority != All && f.Priority != "" && r.Priority != f.Priority {
		return false
	}
	return true
}

// Apply filters and sorts a snapshot into display order. The sort is
// stable: incomplete before completed, then priority high to low, then
// due date ascending with dated reminders before undated ones; undated
// reminders keep their encounter order.
func Apply(reminders []*model.Reminder, f Filter) []*model.Reminder {
	out := make([]*model.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if f.Matches(r) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		ar, br := model.PriorityRank(a.Priority), model.PriorityRank(b.Priority)
		if ar != br {
			return ar > br
		}

		switch {
		case a.DueDate != "" && b.DueDate != "":
			return a.DueDate < b.DueDate
		case a.DueDate != "":
			return true
		default:
			return false
		}
	})

	return out
}

// PendingDueToday returns the incomplete reminders due on now's date,
// in input order. This feeds the message-of-the-day surface.
func PendingDueToday(reminders []*model.Reminder, today string) []*model.Reminder {
	var due []*model.Reminder
	for _, r := range reminders {
		if !r.Completed && r.DueDate == today {
			due = append(due, r)
		}
	}
	return due
}
