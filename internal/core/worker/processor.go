// Package worker delivers webhook events for settled payments in the
// background, with bounded retries.
package worker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Monish892/Payment-integration/internal/core/domain"
	"github.com/Monish892/Payment-integration/internal/core/notifications"
)

const (
	maxAttempts = 5
	queueSize   = 64
)

type job struct {
	id       string
	payload  map[string]interface{}
	attempts int
}

// WebhookWorker queues payment events and posts them to the configured
// subscriber URL. Delivery failures are retried with growing backoff; a
// full queue drops the event with a log line rather than block a payment.
type WebhookWorker struct {
	url    string
	secret string
	jobs   chan job

	mu      sync.Mutex
	stopped bool
}

// StartWebhookWorker launches the delivery goroutine. With an empty URL the
// worker is inert: enqueues become no-ops.
func StartWebhookWorker(url, secret string) *WebhookWorker {
	w := &WebhookWorker{url: url, secret: secret, jobs: make(chan job, queueSize)}
	if url == "" {
		return w
	}

	go func() {
		slog.Info("👷 webhook worker started", "url", url)
		for j := range w.jobs {
			w.process(j)
		}
	}()
	return w
}

// EnqueueReceipt queues a payment.succeeded / payment.failed event for a
// settled receipt. Pending receipts are skipped; they are not terminal.
func (w *WebhookWorker) EnqueueReceipt(r domain.Receipt) {
	if w.url == "" || r.Status == domain.StatusPending {
		return
	}

	event := "payment.succeeded"
	if r.Status == domain.StatusFailed {
		event = "payment.failed"
	}

	w.enqueue(job{
		id: uuid.NewString(),
		payload: map[string]interface{}{
			"event": event,
			"data": map[string]interface{}{
				"transactionId": r.TransactionID,
				"amount":        r.Amount,
				"payeeName":     r.PayeeName,
				"upiId":         r.PayeeID,
				"status":        r.Status,
				"source":        r.Source,
				"timestamp":     r.Timestamp,
			},
		},
	})
}

func (w *WebhookWorker) enqueue(j job) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.jobs <- j:
	default:
		slog.Warn("webhook queue full, dropping event", "job_id", j.id)
	}
}

func (w *WebhookWorker) process(j job) {
	err := notifications.SendWebhook(w.url, j.payload, w.secret)
	if err == nil {
		slog.Info("✅ webhook delivered", "job_id", j.id, "attempt", j.attempts+1)
		return
	}

	j.attempts++
	if j.attempts >= maxAttempts {
		slog.Error("webhook delivery abandoned", "job_id", j.id, "error", err)
		return
	}

	backoff := time.Duration(j.attempts*10) * time.Second
	slog.Warn("webhook delivery failed, scheduling retry",
		"job_id", j.id, "attempt", j.attempts, "retry_in", backoff, "error", err)
	time.AfterFunc(backoff, func() { w.enqueue(j) })
}

// Stop prevents further enqueues and lets the delivery goroutine drain.
func (w *WebhookWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.jobs)
}
