package scheduler

import (
	"github.com/manav03panchal/remindme/internal/clock"
	"github.com/manav03panchal/remindme/internal/logging"
	"github.com/manav03panchal/remindme/internal/model"
)

// ReminderSource is the slice of the store the sweep needs.
type ReminderSource interface {
	List() []*model.Reminder
	MarkNotificationSent(id string)
}

// Sweep re-evaluates all reminders and raises overdue alerts for the
// ones whose due instant has passed without an alert being sent yet.
type Sweep struct {
	source ReminderSource
	sched  *Scheduler
	clock  clock.Clock
}

// NewSweep creates a sweep over the given source.
func NewSweep(source ReminderSource, sched *Scheduler, c clock.Clock) *Sweep {
	if c == nil {
		c = clock.System()
	}
	return &Sweep{source: source, sched: sched, clock: c}
}

// Check runs one sweep pass. Each overdue reminder alerts at most once:
// the notification-sent flag set here gates later passes, so
// back-to-back triggers are idempotent.
func (s *Sweep) Check() {
	now := s.clock.Now()
	var fired int

	for _, r := range s.source.List() {
		if r.Completed || r.NotificationSent || !r.HasDueDate() {
			continue
		}
		at, ok := model.DueInstant(r.DueDate, r.DueTime)
		if !ok || at.After(now) {
			continue
		}

		s.sched.SendOverdue(r)
		s.source.MarkNotificationSent(r.ID)
		fired++
	}

	if fired > 0 {
		logging.DebugLog("overdue sweep", logging.KeyCount, fired)
	}
}
