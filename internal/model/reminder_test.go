package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationID(t *testing.T) {
	r := &Reminder{ID: "1757925000123"}
	assert.Equal(t, 1757925000123, r.NotificationID())
	assert.Equal(t, r.NotificationID()+SnoozeIDOffset, NotificationID(r.ID)+1000)
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 3, PriorityRank(PriorityHigh))
	assert.Equal(t, 2, PriorityRank(PriorityMedium))
	assert.Equal(t, 1, PriorityRank(PriorityLow))
	assert.Equal(t, 0, PriorityRank("bogus"))
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories() {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory("chores"))
	assert.False(t, IsValidCategory(""))
}

func TestIsValidPriority(t *testing.T) {
	for _, p := range ValidPriorities() {
		assert.True(t, IsValidPriority(p))
	}
	assert.False(t, IsValidPriority("urgent"))
}

func TestNewReminder(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.Local)
	r := NewReminder("42", Draft{
		Text:     "Buy milk",
		Category: CategoryShopping,
		Priority: PriorityHigh,
		DueDate:  "2026-09-16",
		DueTime:  "14:00",
	}, now)

	assert.Equal(t, "42", r.ID)
	assert.Equal(t, "Buy milk", r.Text)
	assert.False(t, r.Completed)
	assert.False(t, r.NotificationSent)
	assert.Equal(t, "Sep 15, 2026", r.CreatedAt)
	assert.True(t, r.HasDueDate())
}

func TestOverdueNotification(t *testing.T) {
	r := &Reminder{
		ID:       "99",
		Text:     "Water plants",
		Category: CategoryPersonal,
		Priority: PriorityLow,
	}
	n := OverdueNotification(r)

	assert.Equal(t, NotifyOverdue, n.Type)
	assert.Equal(t, "Task Pending!", n.Title)
	assert.Contains(t, n.Message, "Water plants")
	assert.Equal(t, "99", n.ReminderID)
	assert.Equal(t, []string{ActionMarkComplete, ActionSnooze}, n.Actions)
}
