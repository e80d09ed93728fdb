package worker

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Monish892/Payment-integration/internal/core/domain"
	"github.com/Monish892/Payment-integration/internal/core/notifications"
)

func receipt() domain.Receipt {
	return domain.Receipt{
		TransactionID: "TXN7F8A92KX",
		Status:        domain.StatusSuccess,
		Amount:        250,
		PayeeName:     "Demo Merchant",
		PayeeID:       "demo@upi",
		Timestamp:     time.Now(),
		Source:        domain.SourceLocal,
	}
}

func TestWorkerDeliversEvent(t *testing.T) {
	var hits int64
	var gotEvent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode webhook payload: %v", err)
		}
		gotEvent.Store(payload["event"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := StartWebhookWorker(srv.URL, "shh")
	defer w.Stop()

	w.EnqueueReceipt(receipt())

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt64(&hits) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if atomic.LoadInt64(&hits) != 1 {
		t.Fatalf("webhook hits = %d, want 1", hits)
	}
	if gotEvent.Load() != "payment.succeeded" {
		t.Errorf("event = %v, want payment.succeeded", gotEvent.Load())
	}
}

func TestWorkerSkipsPendingAndInert(t *testing.T) {
	// No URL configured: enqueue is a no-op, nothing to deliver and
	// nothing to panic on.
	w := StartWebhookWorker("", "")
	w.EnqueueReceipt(receipt())
	w.Stop()

	// Pending receipts are non-terminal and must not produce an event.
	pending := receipt()
	pending.Status = domain.StatusPending
	w2 := &WebhookWorker{url: "http://example.invalid", jobs: make(chan job, 4)}
	w2.EnqueueReceipt(pending)
	if len(w2.jobs) != 0 {
		t.Errorf("pending receipt enqueued %d jobs, want 0", len(w2.jobs))
	}
}

func TestWorkerSignsPayload(t *testing.T) {
	var gotSig atomic.Value
	var gotBody atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read webhook body: %v", err)
		}
		gotBody.Store(body)
		gotSig.Store(r.Header.Get("X-Webhook-Signature"))
	}))
	defer srv.Close()

	w := StartWebhookWorker(srv.URL, "secret")
	defer w.Stop()
	w.EnqueueReceipt(receipt())

	deadline := time.Now().Add(2 * time.Second)
	for gotSig.Load() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	sig, _ := gotSig.Load().(string)
	body, _ := gotBody.Load().([]byte)
	if sig == "" {
		t.Fatal("webhook missing X-Webhook-Signature")
	}
	if want := notifications.Sign(body, "secret"); sig != want {
		t.Errorf("signature = %s, want %s", sig, want)
	}
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	w := StartWebhookWorker("http://127.0.0.1:1", "")
	w.Stop()
	w.Stop()
	w.EnqueueReceipt(receipt()) // must not panic after Stop
}
