// Package store provides the in-memory reminder collection. The store
// exclusively owns all reminder records; callers get copies and mutate
// through the store's operations. State lives only for the lifetime of
// the session, by design.
package store

import (
	"sync"

	"github.com/manav03panchal/remindme/internal/clock"
	"github.com/manav03panchal/remindme/internal/errors"
	"github.com/manav03panchal/remindme/internal/logging"
	"github.com/manav03panchal/remindme/internal/model"
	"github.com/manav03panchal/remindme/internal/validate"
)

// Planner receives scheduling side effects of store mutations. The
// notification scheduler implements it; tests inject a fake. Planner
// calls happen outside the store lock and must not block.
type Planner interface {
	// Schedule arranges delivery for a reminder with a due date. An
	// already-passed due instant fires an immediate overdue alert.
	Schedule(r *model.Reminder)

	// Cancel drops any outstanding delivery for the reminder id, both
	// the primary and the derived snooze identifier.
	Cancel(id string)
}

// Store is the mutex-guarded, newest-first reminder collection.
type Store struct {
	mu        sync.Mutex
	reminders []*model.Reminder // newest first
	lastID    int64
	clock     clock.Clock
	planner   Planner
	listeners []func()
}

// New creates an empty store using the given clock.
func New(c clock.Clock) *Store {
	if c == nil {
		c = clock.System()
	}
	return &Store{clock: c}
}

// SetPlanner wires the notification scheduler. Mutations before this is
// called have no scheduling side effects.
func (s *Store) SetPlanner(p Planner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planner = p
}

// OnChange registers a listener fired once after every content change.
// Listeners run synchronously on the mutating goroutine.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add validates a draft and prepends the new reminder. Empty category
// and priority fall back to the defaults the add form starts from.
func (s *Store) Add(d model.Draft) (*model.Reminder, error) {
	if d.Category == "" {
		d.Category = model.CategoryPersonal
	}
	if d.Priority == "" {
		d.Priority = model.PriorityMedium
	}
	d.Text = trimText(d.Text)

	if err := validate.Draft(d); err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.clock.Now()
	r := model.NewReminder(s.nextIDLocked(now.UnixMilli()), d, now)
	s.reminders = append([]*model.Reminder{r}, s.reminders...)
	planner := s.planner
	s.mu.Unlock()

	logging.DebugLog("reminder added",
		logging.KeyReminderID, r.ID,
		"category", r.Category,
		"priority", r.Priority)

	if planner != nil && r.HasDueDate() {
		planner.Schedule(snapshot(r))
	}
	s.notifyChanged()

	return snapshot(r), nil
}

// Update applies a partial update. Unknown ids are a hard error; a
// patch producing empty text is rejected with the record untouched.
// The notification-sent flag resets and delivery is rescheduled.
func (s *Store) Update(id string, p model.Patch) (*model.Reminder, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, errors.Wrapf(errors.ErrReminderNotFound, "update %s", id)
	}

	updated := *s.reminders[idx]
	applyPatch(&updated, p)
	updated.Text = trimText(updated.Text)

	if err := validate.Text(updated.Text); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := validateFields(&updated); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	updated.NotificationSent = false
	s.reminders[idx] = &updated
	planner := s.planner
	s.mu.Unlock()

	logging.DebugLog("reminder updated", logging.KeyReminderID, id)

	if planner != nil {
		planner.Cancel(id)
		if !updated.Completed && updated.HasDueDate() {
			planner.Schedule(snapshot(&updated))
		}
	}
	s.notifyChanged()

	return snapshot(&updated), nil
}

// ToggleComplete flips completion. Completing cancels outstanding
// delivery; un-completing resets the notification-sent flag and
// reschedules, firing immediately if the due instant already passed.
func (s *Store) ToggleComplete(id string) (*model.Reminder, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, errors.Wrapf(errors.ErrReminderNotFound, "toggle %s", id)
	}

	updated := *s.reminders[idx]
	updated.Completed = !updated.Completed
	if !updated.Completed {
		updated.NotificationSent = false
	}
	s.reminders[idx] = &updated
	planner := s.planner
	s.mu.Unlock()

	logging.DebugLog("reminder toggled",
		logging.KeyReminderID, id,
		"completed", updated.Completed)

	if planner != nil {
		if updated.Completed {
			planner.Cancel(id)
		} else if updated.HasDueDate() {
			planner.Schedule(snapshot(&updated))
		}
	}
	s.notifyChanged()

	return snapshot(&updated), nil
}

// Remove deletes a reminder permanently. Removing an absent id is a
// silent no-op. Confirmation happens before this is called.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.reminders = append(s.reminders[:idx], s.reminders[idx+1:]...)
	planner := s.planner
	s.mu.Unlock()

	logging.DebugLog("reminder removed", logging.KeyReminderID, id)

	if planner != nil {
		planner.Cancel(id)
	}
	s.notifyChanged()
}

// MarkNotificationSent records that the overdue alert for this reminder
// has been raised. Sweep-only: it does not reset flags or reschedule.
func (s *Store) MarkNotificationSent(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	updated := *s.reminders[idx]
	updated.NotificationSent = true
	s.reminders[idx] = &updated
	s.mu.Unlock()

	s.notifyChanged()
}

// Get returns a copy of the reminder with the given id.
func (s *Store) Get(id string) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, errors.Wrapf(errors.ErrReminderNotFound, "get %s", id)
	}
	return snapshot(s.reminders[idx]), nil
}

// List returns a newest-first snapshot of all reminders.
func (s *Store) List() []*model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Reminder, len(s.reminders))
	for i, r := range s.reminders {
		out[i] = snapshot(r)
	}
	return out
}

// Len returns the number of reminders.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminders)
}

// nextIDLocked derives a unique, monotonically increasing numeric id
// from the millisecond timestamp.
func (s *Store) nextIDLocked(millis int64) string {
	if millis <= s.lastID {
		millis = s.lastID + 1
	}
	s.lastID = millis
	return formatID(millis)
}

// indexLocked returns the position of id, or -1.
func (s *Store) indexLocked(id string) int {
	for i, r := range s.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// notifyChanged runs the change listeners.
func (s *Store) notifyChanged() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
