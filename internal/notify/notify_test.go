package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/remindme/internal/config"
	"github.com/manav03panchal/remindme/internal/model"
)

func testNotification() *model.Notification {
	n := model.NewNotification(model.NotifyOverdue, "Task Pending!", "Your task is pending: buy milk")
	n.ReminderID = "42"
	n.Timestamp = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	return n.WithField("Category", "shopping")
}

func TestDiscordFormatter(t *testing.T) {
	payload, err := (&DiscordFormatter{}).Format(testNotification())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	embeds, ok := decoded["embeds"].([]any)
	require.True(t, ok)
	require.Len(t, embeds, 1)

	embed := embeds[0].(map[string]any)
	assert.Equal(t, "Task Pending!", embed["title"])
	assert.Contains(t, embed["description"], "buy milk")
	assert.NotZero(t, embed["color"])
}

func TestSlackFormatter(t *testing.T) {
	payload, err := (&SlackFormatter{}).Format(testNotification())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "*Task Pending!*", decoded["text"])
	blocks, ok := decoded["blocks"].([]any)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(blocks), 2)
}

func TestTeamsFormatter(t *testing.T) {
	payload, err := (&TeamsFormatter{}).Format(testNotification())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "MessageCard", decoded["@type"])
	assert.Equal(t, "Task Pending!", decoded["summary"])
}

func TestGenericFormatter_Default(t *testing.T) {
	payload, err := (&GenericFormatter{}).Format(testNotification())
	require.NoError(t, err)

	var decoded genericPayload
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "overdue", decoded.Type)
	assert.Equal(t, "42", decoded.ReminderID)
	assert.Equal(t, "shopping", decoded.Fields["Category"])
}

func TestGenericFormatter_Template(t *testing.T) {
	f := NewGenericFormatter(`{"msg":"{{.Title}}"}`)
	payload, err := f.Format(testNotification())
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"Task Pending!"}`, string(payload))
}

func TestGetFormatter(t *testing.T) {
	assert.IsType(t, &DiscordFormatter{}, GetFormatter(WebhookTypeDiscord))
	assert.IsType(t, &SlackFormatter{}, GetFormatter(WebhookTypeSlack))
	assert.IsType(t, &TeamsFormatter{}, GetFormatter(WebhookTypeTeams))
	assert.IsType(t, &GenericFormatter{}, GetFormatter("unknown"))
}

func TestDispatcher_FireNowDeliversToWebhook(t *testing.T) {
	var mu sync.Mutex
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		mu.Lock()
		bodies = append(bodies, string(buf))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher([]config.Webhook{
		{Name: "test", Type: WebhookTypeGeneric, URL: server.URL, Enabled: true},
	})
	defer d.Close()

	d.FireNow(42, testNotification())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Task Pending!")
}

func TestDispatcher_ObserversSeeEveryDelivery(t *testing.T) {
	d := NewDispatcher(nil)
	defer d.Close()

	var mu sync.Mutex
	var got []int
	d.OnFire(func(id int, n *model.Notification) {
		mu.Lock()
		got = append(got, id)
		mu.Unlock()
	})

	d.FireNow(1, testNotification())
	d.FireNow(2, testNotification())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, got)
}

func TestDispatcher_ScheduleAtAndCancel(t *testing.T) {
	d := NewDispatcher(nil)
	defer d.Close()

	d.ScheduleAt(42, time.Now().Add(time.Hour), testNotification())
	assert.Equal(t, 1, d.Pending())

	// Re-scheduling under the same id replaces, not duplicates.
	d.ScheduleAt(42, time.Now().Add(2*time.Hour), testNotification())
	assert.Equal(t, 1, d.Pending())

	d.Cancel(42)
	assert.Equal(t, 0, d.Pending())
}

func TestDispatcher_ScheduledDeliveryFires(t *testing.T) {
	d := NewDispatcher(nil)
	defer d.Close()

	fired := make(chan int, 1)
	d.OnFire(func(id int, n *model.Notification) {
		fired <- id
	})

	d.ScheduleAt(42, time.Now().Add(10*time.Millisecond), testNotification())

	select {
	case id := <-fired:
		assert.Equal(t, 42, id)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled delivery never fired")
	}
	assert.Equal(t, 0, d.Pending())
}

func TestDispatcher_CloseCancelsEverything(t *testing.T) {
	d := NewDispatcher(nil)

	d.ScheduleAt(1, time.Now().Add(time.Hour), testNotification())
	d.ScheduleAt(2, time.Now().Add(time.Hour), testNotification())
	d.Close()

	assert.Equal(t, 0, d.Pending())

	// Scheduling after Close is ignored.
	d.ScheduleAt(3, time.Now().Add(time.Hour), testNotification())
	assert.Equal(t, 0, d.Pending())
}

func TestHTTPClient_RetriesServerErrors(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewHTTPClient()
	c.retryDelay = []time.Duration{0, time.Millisecond, time.Millisecond}

	result := c.SendWithTimeout(server.URL, "application/json", []byte(`{}`), 5*time.Second)
	require.NoError(t, result.Error)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestHTTPClient_ClientErrorNotRetried(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		mu.Unlock()
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := NewHTTPClient()
	result := c.SendWithTimeout(server.URL, "application/json", []byte(`{}`), 5*time.Second)

	require.Error(t, result.Error)
	mu.Lock()
	assert.Equal(t, 1, attempts)
	mu.Unlock()
}
