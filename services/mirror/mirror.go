package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Event is one fire-and-forget data mirror payload (student, admin,
// college, course or payment rows pushed to a spreadsheet/webhook).
type Event struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Notifier is the best-effort side channel the core calls but never waits
// on. Failures must never affect the primary in-memory state change that
// triggered the event.
type Notifier interface {
	Notify(event Event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}

// Nop returns a Notifier that drops every event.
func Nop() Notifier { return nopNotifier{} }

// WebhookMirror posts events as JSON to a webhook endpoint. Delivery is
// asynchronous; failed events are queued and retried by the cron flush
// job. Errors are logged and swallowed.
type WebhookMirror struct {
	endpoint string
	client   *http.Client
	log      *logrus.Entry

	mu      sync.Mutex
	pending []Event
}

// NewWebhookMirror creates a mirror for the given endpoint. An empty
// endpoint yields a mirror that drops everything.
func NewWebhookMirror(endpoint string) *WebhookMirror {
	return &WebhookMirror{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      logrus.WithField("component", "mirror"),
	}
}

// Notify sends the event in the background. The caller returns
// immediately; a failed post lands on the retry queue.
func (m *WebhookMirror) Notify(event Event) {
	if m.endpoint == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.post(ctx, event); err != nil {
			m.log.WithError(err).WithField("event_type", event.Type).
				Warn("mirror delivery failed, queued for retry")
			m.enqueue(event)
		}
	}()
}

// Flush retries every queued event once and returns how many remain
// queued afterwards.
func (m *WebhookMirror) Flush(ctx context.Context) int {
	m.mu.Lock()
	queued := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, event := range queued {
		if err := m.post(ctx, event); err != nil {
			m.log.WithError(err).WithField("event_type", event.Type).
				Warn("mirror retry failed, keeping queued")
			m.enqueue(event)
		}
	}
	return m.PendingCount()
}

// PendingCount reports how many events await retry.
func (m *WebhookMirror) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *WebhookMirror) enqueue(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, event)
}

func (m *WebhookMirror) post(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode mirror event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mirror request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post mirror event: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("mirror endpoint returned %d", resp.StatusCode)
	}
	return nil
}
