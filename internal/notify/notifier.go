// Package notify provides notification delivery for RemindMe: the
// scheduling contract the core depends on, and a webhook-backed
// dispatcher implementing it. Delivery is fire-and-forget; failures
// are logged and never reach the store's mutation path.
package notify

import (
	"time"

	"github.com/manav03panchal/remindme/internal/model"
)

// Notifier is the delivery collaborator contract. Identifiers are the
// numeric ids derived from reminder ids; the caller is responsible for
// the primary/snooze id pairing.
type Notifier interface {
	// ScheduleAt arranges delivery of n at the given instant under id,
	// replacing any delivery already scheduled under the same id.
	ScheduleAt(id int, at time.Time, n *model.Notification)

	// FireNow delivers n immediately under id.
	FireNow(id int, n *model.Notification)

	// Cancel drops any outstanding scheduled delivery under id.
	Cancel(id int)
}

// Nop is a Notifier that discards everything. Useful when delivery is
// unavailable or disabled.
type Nop struct{}

func (Nop) ScheduleAt(int, time.Time, *model.Notification) {}
func (Nop) FireNow(int, *model.Notification)               {}
func (Nop) Cancel(int)                                     {}
