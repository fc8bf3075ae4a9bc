// Package model defines the core data types for RemindMe.
package model

import (
	"strconv"
	"time"
)

// Categories a reminder can belong to.
const (
	CategoryPersonal = "personal"
	CategoryWork     = "work"
	CategoryHealth   = "health"
	CategoryShopping = "shopping"
	CategoryFamily   = "family"
)

// Priority levels for reminders.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultDueTime is used for scheduling when a reminder has a due date
// but no due time.
const DefaultDueTime = "09:00"

// Reminder is a single task record. The store owns all Reminder values;
// consumers receive copies.
type Reminder struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	Category         string `json:"category"`
	Priority         string `json:"priority"`
	DueDate          string `json:"due_date,omitempty"` // YYYY-MM-DD, empty if unset
	DueTime          string `json:"due_time,omitempty"` // HH:MM, empty if unset
	Completed        bool   `json:"completed"`
	CreatedAt        string `json:"created_at"`
	NotificationSent bool   `json:"notification_sent"`
}

// Draft holds the user-supplied fields for a new reminder.
type Draft struct {
	Text     string
	Category string
	Priority string
	DueDate  string
	DueTime  string
}

// Patch holds optional fields for a partial update. Nil means "leave
// unchanged".
type Patch struct {
	Text     *string
	Category *string
	Priority *string
	DueDate  *string
	DueTime  *string
}

// IsPending returns true if the reminder is not completed.
func (r *Reminder) IsPending() bool {
	return !r.Completed
}

// HasDueDate returns true if a due date is set.
func (r *Reminder) HasDueDate() bool {
	return r.DueDate != ""
}

// NotificationID derives the numeric delivery identifier from the
// reminder id. The snooze alert uses NotificationID()+SnoozeIDOffset.
// Two reminders whose numeric ids differ by exactly the offset collide;
// this matches the documented id scheme and is kept as-is.
func (r *Reminder) NotificationID() int {
	return NotificationID(r.ID)
}

// SnoozeIDOffset separates the snooze alert id from the primary one.
const SnoozeIDOffset = 1000

// NotificationID derives the numeric delivery identifier for a
// reminder id string.
func NotificationID(id string) int {
	n, _ := strconv.Atoi(id)
	return n
}

// ValidCategories returns the fixed category set.
func ValidCategories() []string {
	return []string{CategoryPersonal, CategoryWork, CategoryHealth, CategoryShopping, CategoryFamily}
}

// IsValidCategory checks membership in the fixed category set.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if category == c {
			return true
		}
	}
	return false
}

// ValidPriorities returns the fixed priority set.
func ValidPriorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValidPriority checks membership in the fixed priority set.
func IsValidPriority(priority string) bool {
	for _, p := range ValidPriorities() {
		if priority == p {
			return true
		}
	}
	return false
}

// PriorityRank maps a priority to its sort weight (high > medium > low).
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// NewReminder builds a reminder from a draft. Validation is the
// caller's concern; the store validates before calling this.
func NewReminder(id string, d Draft, now time.Time) *Reminder {
	return &Reminder{
		ID:               id,
		Text:             d.Text,
		Category:         d.Category,
		Priority:         d.Priority,
		DueDate:          d.DueDate,
		DueTime:          d.DueTime,
		Completed:        false,
		CreatedAt:        now.Format("Jan 2, 2006"),
		NotificationSent: false,
	}
}
