package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/remindme/internal/clock"
	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/model"
)

// fakeNotifier records delivery requests.
type fakeNotifier struct {
	mu        sync.Mutex
	scheduled map[int]scheduledCall
	fired     []firedCall
	cancelled []int
}

type scheduledCall struct {
	at time.Time
	n  *model.Notification
}

type firedCall struct {
	id int
	n  *model.Notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{scheduled: make(map[int]scheduledCall)}
}

func (f *fakeNotifier) ScheduleAt(id int, at time.Time, n *model.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled[id] = scheduledCall{at: at, n: n}
}

func (f *fakeNotifier) FireNow(id int, n *model.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fired = append(f.fired, firedCall{id: id, n: n})
}

func (f *fakeNotifier) Cancel(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
	delete(f.scheduled, id)
}

var testNow = time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)

func newTestScheduler() (*Scheduler, *fakeNotifier, *clock.Fake) {
	n := newFakeNotifier()
	clk := clock.NewFake(testNow)
	return New(n, clk), n, clk
}

func TestSchedule_FutureDueInstant(t *testing.T) {
	s, n, _ := newTestScheduler()

	r := &model.Reminder{ID: "42", Text: "call dentist", Category: model.CategoryHealth,
		Priority: model.PriorityMedium, DueDate: "2026-09-16", DueTime: "14:00"}
	s.Schedule(r)

	call, ok := n.scheduled[42]
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 16, 14, 0, 0, 0, time.Local), call.at)
	assert.Equal(t, model.NotifyScheduled, call.n.Type)
	assert.Equal(t, "42", call.n.ReminderID)
}

func TestSchedule_DefaultDueTime(t *testing.T) {
	s, n, _ := newTestScheduler()

	r := &model.Reminder{ID: "42", Text: "x", DueDate: "2026-09-16"}
	s.Schedule(r)

	call, ok := n.scheduled[42]
	require.True(t, ok)
	assert.Equal(t, 9, call.at.Hour(), "missing due time defaults to 09:00")
}

func TestSchedule_PastDueInstantFiresOverdueSoon(t *testing.T) {
	s, n, _ := newTestScheduler()

	// Due this morning at 09:00, now is 10:00.
	r := &model.Reminder{ID: "42", Text: "buy milk", DueDate: "2026-09-15", DueTime: "09:00"}
	s.Schedule(r)

	call, ok := n.scheduled[42]
	require.True(t, ok)
	assert.Equal(t, model.NotifyOverdue, call.n.Type)
	assert.Equal(t, testNow.Add(config.Global.Alert.OverdueFireDelay), call.at)
}

func TestSchedule_NoDueDateIsNoop(t *testing.T) {
	s, n, _ := newTestScheduler()

	s.Schedule(&model.Reminder{ID: "42", Text: "someday"})
	assert.Empty(t, n.scheduled)
	assert.Empty(t, n.fired)
}

func TestSnooze(t *testing.T) {
	s, n, _ := newTestScheduler()

	r := &model.Reminder{ID: "42", Text: "buy milk"}
	s.Snooze(r)

	call, ok := n.scheduled[42+model.SnoozeIDOffset]
	require.True(t, ok, "snooze alert lives under the derived snooze id")
	assert.Equal(t, testNow.Add(config.Global.Alert.SnoozeOffset), call.at)
	assert.Equal(t, model.NotifySnoozed, call.n.Type)

	_, primary := n.scheduled[42]
	assert.False(t, primary, "snooze never touches the primary id")
}

func TestCancel_BothDerivedIDs(t *testing.T) {
	s, n, _ := newTestScheduler()

	s.Cancel("42")
	assert.ElementsMatch(t, []int{42, 1042}, n.cancelled)
}

func TestSendOverdue(t *testing.T) {
	s, n, _ := newTestScheduler()

	r := &model.Reminder{ID: "7", Text: "water plants", Category: model.CategoryPersonal,
		Priority: model.PriorityLow}
	s.SendOverdue(r)

	require.Len(t, n.fired, 1)
	assert.Equal(t, 7, n.fired[0].id)
	assert.Equal(t, model.NotifyOverdue, n.fired[0].n.Type)
	assert.Contains(t, n.fired[0].n.Message, "water plants")
}

func TestCronSpec(t *testing.T) {
	assert.Equal(t, "*/10 * * * * *", cronSpec(10*time.Second))
	assert.Equal(t, "*/30 * * * * *", cronSpec(30*time.Second))
	assert.Equal(t, "@every 1m30s", cronSpec(90*time.Second))
	assert.Equal(t, "@every 7s", cronSpec(7*time.Second))
}
