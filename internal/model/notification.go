package model

import (
	"fmt"
	"strings"
	"time"
)

// NotificationType defines the kind of alert being delivered.
type NotificationType string

// Notification types.
const (
	NotifyScheduled NotificationType = "scheduled"
	NotifyOverdue   NotificationType = "overdue"
	NotifySnoozed   NotificationType = "snoozed"
	NotifyMOTD      NotificationType = "message_of_day"
	NotifyTest      NotificationType = "test"
)

// Notification actions offered on reminder alerts.
const (
	ActionMarkComplete = "Mark Complete"
	ActionSnooze       = "Snooze"
)

// Notification is the payload handed to the delivery collaborator.
type Notification struct {
	Type       NotificationType  `json:"type"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	ReminderID string            `json:"reminder_id,omitempty"`
	Actions    []string          `json:"actions,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Color      int               `json:"color,omitempty"`
}

// NewNotification creates a notification with the given type and text.
func NewNotification(t NotificationType, title, message string) *Notification {
	return &Notification{
		Type:      t,
		Title:     title,
		Message:   message,
		Fields:    make(map[string]string),
		Timestamp: time.Now(),
	}
}

// WithReminder tags the notification with the reminder it concerns and
// attaches the standard alert actions.
func (n *Notification) WithReminder(id string) *Notification {
	n.ReminderID = id
	n.Actions = []string{ActionMarkComplete, ActionSnooze}
	return n
}

// WithField adds a display field.
func (n *Notification) WithField(key, value string) *Notification {
	if n.Fields == nil {
		n.Fields = make(map[string]string)
	}
	n.Fields[key] = value
	return n
}

// WithColor sets the embed color.
func (n *Notification) WithColor(color int) *Notification {
	n.Color = color
	return n
}

// Notification colors (webhook-embed hex values).
const (
	ColorSuccess = 0x57F287
	ColorWarning = 0xFEE75C
	ColorInfo    = 0x5865F2
	ColorError   = 0xED4245
	ColorPrimary = 0x3498DB
)

// DefaultColorForType returns the default color for a notification type.
func DefaultColorForType(t NotificationType) int {
	switch t {
	case NotifyOverdue:
		return ColorError
	case NotifyScheduled:
		return ColorPrimary
	case NotifySnoozed:
		return ColorWarning
	case NotifyMOTD:
		return ColorInfo
	default:
		return ColorInfo
	}
}

// ScheduledNotification builds the alert delivered when a reminder
// comes due.
func ScheduledNotification(r *Reminder) *Notification {
	n := NewNotification(NotifyScheduled,
		"Task Reminder",
		fmt.Sprintf("Your task is due: %s", r.Text)).
		WithReminder(r.ID).
		WithField("Category", r.Category).
		WithField("Priority", strings.ToUpper(r.Priority))
	return n.WithColor(DefaultColorForType(NotifyScheduled))
}

// OverdueNotification builds the alert raised for a past-due reminder.
func OverdueNotification(r *Reminder) *Notification {
	n := NewNotification(NotifyOverdue,
		"Task Pending!",
		fmt.Sprintf("Your task is pending: %s", r.Text)).
		WithReminder(r.ID).
		WithField("Category", r.Category).
		WithField("Priority", strings.ToUpper(r.Priority))
	return n.WithColor(DefaultColorForType(NotifyOverdue))
}

// SnoozedNotification builds the follow-up alert for a snoozed reminder.
func SnoozedNotification(r *Reminder) *Notification {
	n := NewNotification(NotifySnoozed,
		"Snoozed Task Reminder",
		fmt.Sprintf("Your snoozed task is still pending: %s", r.Text)).
		WithReminder(r.ID).
		WithField("Category", r.Category).
		WithField("Priority", strings.ToUpper(r.Priority))
	return n.WithColor(DefaultColorForType(NotifySnoozed))
}

// TypeLabel returns a human-readable label for the notification type.
func (n *Notification) TypeLabel() string {
	switch n.Type {
	case NotifyScheduled:
		return "Reminder"
	case NotifyOverdue:
		return "Overdue Task"
	case NotifySnoozed:
		return "Snoozed Task"
	case NotifyMOTD:
		return "Message of the Day"
	case NotifyTest:
		return "Test Notification"
	default:
		return "Notification"
	}
}
