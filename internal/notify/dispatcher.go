package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/logging"
	"github.com/manav03panchal/remindme/internal/model"
)

// FireFunc observes every delivered notification. The TUI registers
// one to surface alerts (and their actions) in-session.
type FireFunc func(id int, n *model.Notification)

// Dispatcher implements Notifier. Immediate deliveries fan out to all
// enabled webhooks; scheduled deliveries are held on cancellable
// in-process timers keyed by numeric id. With no webhooks configured,
// alerts still reach the registered FireFunc observers and the log.
type Dispatcher struct {
	webhooks   []config.Webhook
	httpClient *HTTPClient

	mu        sync.Mutex
	timers    map[int]*time.Timer
	observers []FireFunc
	closed    bool
}

// NewDispatcher creates a dispatcher delivering to the given webhooks.
func NewDispatcher(webhooks []config.Webhook) *Dispatcher {
	return &Dispatcher{
		webhooks:   webhooks,
		httpClient: NewHTTPClient(),
		timers:     make(map[int]*time.Timer),
	}
}

// OnFire registers an observer for delivered notifications.
func (d *Dispatcher) OnFire(fn FireFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, fn)
}

// ScheduleAt arranges delivery of n at the given instant, replacing any
// timer already held under id.
func (d *Dispatcher) ScheduleAt(id int, at time.Time, n *model.Notification) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if t, ok := d.timers[id]; ok {
		t.Stop()
	}
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	d.timers[id] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, id)
		d.mu.Unlock()
		d.deliver(id, n)
	})
	d.mu.Unlock()

	logging.DebugLog("notification scheduled",
		logging.KeyNotifyID, id,
		"at", at.Format(time.RFC3339))
}

// FireNow delivers n immediately.
func (d *Dispatcher) FireNow(id int, n *model.Notification) {
	d.deliver(id, n)
}

// Cancel drops any scheduled delivery held under id.
func (d *Dispatcher) Cancel(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[id]; ok {
		t.Stop()
		delete(d.timers, id)
		logging.DebugLog("notification cancelled", logging.KeyNotifyID, id)
	}
}

// Pending returns the number of scheduled deliveries being held.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Close cancels all held timers. Further scheduling is ignored.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}

// deliver runs the observers and fans out to the webhooks.
func (d *Dispatcher) deliver(id int, n *model.Notification) {
	d.mu.Lock()
	observers := make([]FireFunc, len(d.observers))
	copy(observers, d.observers)
	d.mu.Unlock()

	for _, fn := range observers {
		fn(id, n)
	}

	logging.Info("notification fired",
		logging.KeyNotifyID, id,
		"type", string(n.Type),
		logging.KeyReminderID, n.ReminderID)

	results := d.sendToWebhooks(context.Background(), n)
	for _, result := range results {
		if result.Error != nil {
			logging.Warn("webhook delivery failed",
				logging.KeyWebhook, result.WebhookName,
				logging.KeyError, result.Error)
		}
	}
}

// DispatchResult contains the outcome of dispatching to one webhook.
type DispatchResult struct {
	WebhookName string
	Success     bool
	StatusCode  int
	Duration    time.Duration
	Error       error
}

// sendToWebhooks sends a notification to all webhooks concurrently.
func (d *Dispatcher) sendToWebhooks(ctx context.Context, n *model.Notification) []DispatchResult {
	if len(d.webhooks) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	results := make([]DispatchResult, len(d.webhooks))

	for i, webhook := range d.webhooks {
		wg.Add(1)
		go func(idx int, wh config.Webhook) {
			defer wg.Done()
			results[idx] = d.sendToWebhook(ctx, n, wh)
		}(i, webhook)
	}

	wg.Wait()
	return results
}

// sendToWebhook formats and sends a notification to a single webhook.
func (d *Dispatcher) sendToWebhook(ctx context.Context, n *model.Notification, webhook config.Webhook) DispatchResult {
	result := DispatchResult{WebhookName: webhook.Name}

	var formatter Formatter
	if webhook.Type == WebhookTypeGeneric && webhook.Template != "" {
		formatter = NewGenericFormatter(webhook.Template)
	} else {
		formatter = GetFormatter(webhook.Type)
	}

	payload, err := formatter.Format(n)
	if err != nil {
		result.Error = fmt.Errorf("failed to format notification: %w", err)
		return result
	}

	sendResult := d.httpClient.Send(ctx, webhook.URL, formatter.ContentType(), payload)

	result.StatusCode = sendResult.StatusCode
	result.Duration = sendResult.Duration
	result.Error = sendResult.Error
	result.Success = sendResult.Error == nil

	return result
}

// HasWebhooks returns true if any webhook endpoints are configured.
func (d *Dispatcher) HasWebhooks() bool {
	return len(d.webhooks) > 0
}
