package parser

import (
	"fmt"
	"time"

	"github.com/manav03panchal/remindme/internal/model"
)

// FormatDue renders a reminder's due fields for display relative to
// now: "Today at 2:00 PM", "Tomorrow", "Monday at 9:00 AM",
// "Mon, Sep 15".
func FormatDue(dueDate, dueTime string, now time.Time) string {
	if dueDate == "" {
		return ""
	}
	day, err := time.ParseInLocation(model.DateLayout, dueDate, now.Location())
	if err != nil {
		return dueDate
	}

	var datePart string
	switch {
	case isSameDay(day, now):
		datePart = "Today"
	case isSameDay(day, now.AddDate(0, 0, 1)):
		datePart = "Tomorrow"
	case day.After(now) && day.Sub(now) < 7*24*time.Hour:
		datePart = day.Format("Monday")
	default:
		datePart = day.Format("Mon, Jan 2")
	}

	if dueTime == "" {
		return datePart
	}
	clock, err := time.Parse(model.TimeLayout, dueTime)
	if err != nil {
		return fmt.Sprintf("%s at %s", datePart, dueTime)
	}
	return fmt.Sprintf("%s at %s", datePart, clock.Format("3:04 PM"))
}

// FormatTimeUntil renders the distance to a due instant.
func FormatTimeUntil(at time.Time, now time.Time) string {
	diff := at.Sub(now)
	if diff < 0 {
		return "overdue"
	}

	if diff < time.Minute {
		return "less than a minute"
	}
	if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "in 1 minute"
		}
		return fmt.Sprintf("in %d minutes", mins)
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		mins := int(diff.Minutes()) % 60
		if hours == 1 {
			if mins > 0 {
				return fmt.Sprintf("in 1 hour %d minutes", mins)
			}
			return "in 1 hour"
		}
		if mins > 0 {
			return fmt.Sprintf("in %d hours %d minutes", hours, mins)
		}
		return fmt.Sprintf("in %d hours", hours)
	}
	if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "in 1 day"
		}
		return fmt.Sprintf("in %d days", days)
	}

	weeks := int(diff.Hours() / (24 * 7))
	if weeks == 1 {
		return "in 1 week"
	}
	return fmt.Sprintf("in %d weeks", weeks)
}

// isSameDay checks if two times fall on the same calendar day.
func isSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
