// Package scheduler turns reminder state into notification deliveries:
// the per-reminder scheduling policy, the periodic overdue sweep, and
// the message-of-the-day watcher.
package scheduler

import (
	"time"

	"github.com/manav03panchal/remindme/internal/clock"
	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/logging"
	"github.com/manav03panchal/remindme/internal/model"
	"github.com/manav03panchal/remindme/internal/notify"
)

// Scheduler maps reminders onto delivery ids and instants. It
// implements the store's Planner contract.
type Scheduler struct {
	notifier notify.Notifier
	clock    clock.Clock
}

// New creates a scheduler delivering through n.
func New(n notify.Notifier, c clock.Clock) *Scheduler {
	if c == nil {
		c = clock.System()
	}
	return &Scheduler{notifier: n, clock: c}
}

// Schedule arranges delivery for a reminder. Without a due date it is a
// no-op. A future due instant schedules the reminder alert at that
// instant; a past or present one fires the overdue alert after a short
// fixed delay instead.
func (s *Scheduler) Schedule(r *model.Reminder) {
	if !r.HasDueDate() {
		return
	}
	at, ok := model.DueInstant(r.DueDate, r.DueTime)
	if !ok {
		logging.Warn("unparseable due instant",
			logging.KeyReminderID, r.ID,
			"due_date", r.DueDate,
			"due_time", r.DueTime)
		return
	}

	id := r.NotificationID()
	now := s.clock.Now()

	if at.After(now) {
		s.notifier.ScheduleAt(id, at, model.ScheduledNotification(r))
		return
	}

	s.notifier.ScheduleAt(id, now.Add(config.Global.Alert.OverdueFireDelay),
		model.OverdueNotification(r))
}

// SendOverdue fires the overdue alert immediately.
func (s *Scheduler) SendOverdue(r *model.Reminder) {
	s.notifier.FireNow(r.NotificationID(), model.OverdueNotification(r))
}

// Snooze pushes a follow-up alert out by the snooze offset, under the
// reminder's snooze id. The primary schedule and the notification-sent
// flag are untouched.
func (s *Scheduler) Snooze(r *model.Reminder) {
	at := s.clock.Now().Add(config.Global.Alert.SnoozeOffset)
	s.notifier.ScheduleAt(r.NotificationID()+model.SnoozeIDOffset, at,
		model.SnoozedNotification(r))
	logging.DebugLog("reminder snoozed",
		logging.KeyReminderID, r.ID,
		"until", at.Format(time.RFC3339))
}

// Cancel drops outstanding deliveries under both derived ids.
func (s *Scheduler) Cancel(id string) {
	n := model.NotificationID(id)
	s.notifier.Cancel(n)
	s.notifier.Cancel(n + model.SnoozeIDOffset)
}
