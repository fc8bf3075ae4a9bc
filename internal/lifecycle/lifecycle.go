// Package lifecycle surfaces app foreground transitions. In a terminal
// session the process returning to the foreground (SIGCONT after a
// suspend, or an explicit SIGUSR1) stands in for the app becoming
// active again; the sweep re-checks overdue reminders on each event.
package lifecycle

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/manav03panchal/remindme/internal/logging"
)

// Events fans foreground transitions out to subscribers.
type Events struct {
	mu          sync.Mutex
	subscribers []func()
	signals     chan os.Signal
	done        chan struct{}
	started     bool
}

// New creates an event source. Start must be called to hook signals;
// Emit works without it.
func New() *Events {
	return &Events{
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
}

// Subscribe registers fn to run on every foreground event. Subscribers
// run on the emitting goroutine and must not block.
func (e *Events) Subscribe(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, fn)
}

// Emit raises a foreground event programmatically.
func (e *Events) Emit() {
	e.mu.Lock()
	subs := make([]func(), len(e.subscribers))
	copy(subs, e.subscribers)
	e.mu.Unlock()

	logging.DebugLog("foreground event")
	for _, fn := range subs {
		fn()
	}
}

// Start hooks SIGUSR1 and SIGCONT to foreground events.
func (e *Events) Start() {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return
	}
	e.started = true
	e.mu.Unlock()

	signal.Notify(e.signals, syscall.SIGUSR1, syscall.SIGCONT)
	go func() {
		for {
			select {
			case <-e.signals:
				e.Emit()
			case <-e.done:
				return
			}
		}
	}()
}

// Stop releases the signal hook.
func (e *Events) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return
	}
	e.started = false
	signal.Stop(e.signals)
	close(e.done)
}
