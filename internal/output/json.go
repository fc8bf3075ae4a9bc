package output

import (
	"time"

	"github.com/manav03panchal/remindme/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ReminderOutput represents a reminder in JSON output.
type ReminderOutput struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	Category         string `json:"category"`
	Priority         string `json:"priority"`
	DueDate          string `json:"due_date,omitempty"`
	DueTime          string `json:"due_time,omitempty"`
	Completed        bool   `json:"completed"`
	Overdue          bool   `json:"overdue"`
	DueToday         bool   `json:"due_today"`
	CreatedAt        string `json:"created_at"`
	NotificationSent bool   `json:"notification_sent"`
}

// NewReminderOutput creates a ReminderOutput from a Reminder.
func NewReminderOutput(r *model.Reminder, now time.Time) *ReminderOutput {
	return &ReminderOutput{
		ID:               r.ID,
		Text:             r.Text,
		Category:         r.Category,
		Priority:         r.Priority,
		DueDate:          r.DueDate,
		DueTime:          r.DueTime,
		Completed:        r.Completed,
		Overdue:          !r.Completed && model.IsOverdue(r.DueDate, now),
		DueToday:         model.IsDueToday(r.DueDate, now),
		CreatedAt:        r.CreatedAt,
		NotificationSent: r.NotificationSent,
	}
}

// ListResponse represents the reminder list output in JSON.
type ListResponse struct {
	Reminders    []*ReminderOutput `json:"reminders"`
	TotalCount   int               `json:"total_count"`
	PendingCount int               `json:"pending_count"`
}

// NewListResponse builds a ListResponse from display-ordered reminders.
func NewListResponse(reminders []*model.Reminder, now time.Time) *ListResponse {
	resp := &ListResponse{
		Reminders:  make([]*ReminderOutput, 0, len(reminders)),
		TotalCount: len(reminders),
	}
	for _, r := range reminders {
		resp.Reminders = append(resp.Reminders, NewReminderOutput(r, now))
		if !r.Completed {
			resp.PendingCount++
		}
	}
	return resp
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
