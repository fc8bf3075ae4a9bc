package model

import "time"

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for due times.
const TimeLayout = "15:04"

// IsOverdue reports whether a due date lies on a calendar day before
// now's. An empty due date is never overdue. The comparison is
// date-only: a reminder due "today" is not overdue until the next
// calendar day begins, regardless of its due time.
func IsOverdue(dueDate string, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	due, err := time.ParseInLocation(DateLayout, dueDate, now.Location())
	if err != nil {
		return false
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(startOfDay)
}

// IsDueToday reports whether the due date equals now's calendar date.
func IsDueToday(dueDate string, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	return dueDate == now.Format(DateLayout)
}

// DueInstant combines a due date and time into the local instant used
// for scheduling. An empty due time defaults to 09:00. Returns false
// if there is no due date or it does not parse.
func DueInstant(dueDate, dueTime string) (time.Time, bool) {
	if dueDate == "" {
		return time.Time{}, false
	}
	if dueTime == "" {
		dueTime = DefaultDueTime
	}
	at, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, dueDate+"T"+dueTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}
