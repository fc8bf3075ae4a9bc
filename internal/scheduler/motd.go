package scheduler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/manav03panchal/remindme/internal/clock"
	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/model"
	"github.com/manav03panchal/remindme/internal/notify"
	"github.com/manav03panchal/remindme/internal/view"
)

// motdNotifyID is the reserved delivery id for the message of the day.
// Reminder ids are positive millisecond timestamps, so it cannot clash.
const motdNotifyID = -1

// MOTD emits the message-of-the-day surface: a short delay after every
// store change, if any incomplete reminder is due today, a summary
// notification fires. Pure display concern; it never mutates state.
type MOTD struct {
	source   interface{ List() []*model.Reminder }
	notifier notify.Notifier
	clock    clock.Clock

	mu    sync.Mutex
	timer *time.Timer
}

// NewMOTD creates the watcher. Wire it with Watch.
func NewMOTD(source interface{ List() []*model.Reminder }, n notify.Notifier, c clock.Clock) *MOTD {
	if c == nil {
		c = clock.System()
	}
	return &MOTD{source: source, notifier: n, clock: c}
}

// OnChange schedules a check after the configured delay, replacing any
// pending one so rapid mutations collapse into a single check. Register
// it as a store change listener; call it once at session start for the
// opening banner.
func (m *MOTD) OnChange() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(config.Global.Alert.MOTDDelay, m.check)
}

// Stop cancels a pending check.
func (m *MOTD) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// check fires the summary if anything is due today.
func (m *MOTD) check() {
	today := m.clock.Now().Format(model.DateLayout)
	due := view.PendingDueToday(m.source.List(), today)
	if len(due) == 0 {
		return
	}
	m.notifier.FireNow(motdNotifyID, motdNotification(due))
}

// motdNotification builds the daily summary payload.
func motdNotification(due []*model.Reminder) *model.Notification {
	var lines []string
	for _, r := range due {
		lines = append(lines, fmt.Sprintf("• %s", r.Text))
	}

	word := "tasks"
	if len(due) == 1 {
		word = "task"
	}

	n := model.NewNotification(model.NotifyMOTD,
		"Today's Tasks",
		fmt.Sprintf("You have %d %s due today:\n%s", len(due), word, strings.Join(lines, "\n")))
	return n.WithColor(model.DefaultColorForType(model.NotifyMOTD))
}
