package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/lifecycle"
	"github.com/manav03panchal/remindme/internal/logging"
)

// Runner drives the sweep: a seconds-granularity cron tick at the
// configured interval, plus an immediate pass on every foreground
// event.
type Runner struct {
	cron   *cron.Cron
	sweep  *Sweep
	events *lifecycle.Events

	mu       sync.Mutex
	lastTick time.Time
	running  bool
}

// NewRunner creates a runner for the given sweep. events may be nil.
func NewRunner(sweep *Sweep, events *lifecycle.Events) *Runner {
	return &Runner{
		cron:   cron.New(cron.WithSeconds()),
		sweep:  sweep,
		events: events,
	}
}

// Start registers the cron entry and the foreground subscription.
func (r *Runner) Start() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.lastTick = time.Now()
	r.mu.Unlock()

	spec := cronSpec(config.Global.Sweep.Interval)
	if _, err := r.cron.AddFunc(spec, r.tick); err != nil {
		return fmt.Errorf("failed to add sweep entry: %w", err)
	}
	r.cron.Start()

	if r.events != nil {
		r.events.Subscribe(r.onForeground)
	}

	logging.DebugLog("sweep runner started", "spec", spec)
	return nil
}

// Stop halts the cron scheduler and waits for a running pass.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	ctx := r.cron.Stop()
	<-ctx.Done()
	logging.DebugLog("sweep runner stopped")
}

// tick runs one scheduled sweep pass. A large gap since the previous
// tick means the system was suspended; the stale pass is skipped and
// the foreground event that follows resume re-checks instead.
func (r *Runner) tick() {
	r.mu.Lock()
	elapsed := time.Since(r.lastTick)
	r.lastTick = time.Now()
	r.mu.Unlock()

	if elapsed > config.Global.Sweep.SleepThreshold {
		logging.DebugLog("skipping stale sweep", "elapsed", elapsed.Round(time.Second))
		return
	}

	r.sweep.Check()
}

// onForeground runs a sweep pass immediately on app foreground.
func (r *Runner) onForeground() {
	r.mu.Lock()
	running := r.running
	r.lastTick = time.Now()
	r.mu.Unlock()

	if running {
		r.sweep.Check()
	}
}

// cronSpec renders an interval as a seconds-granularity cron spec.
// Whole-second divisors of a minute use the step form; anything else
// falls back to the @every descriptor.
func cronSpec(interval time.Duration) string {
	sec := int(interval.Seconds())
	if sec > 0 && sec < 60 && 60%sec == 0 && interval == time.Duration(sec)*time.Second {
		return fmt.Sprintf("*/%d * * * * *", sec)
	}
	return fmt.Sprintf("@every %s", interval)
}
