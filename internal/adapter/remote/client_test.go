package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Monish892/Payment-integration/internal/core/domain"
)

func TestClientPaySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pay" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","transactionId":"TXNREMOTE01","message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.Pay(context.Background(), domain.PaymentIntent{MerchantName: "Joe", PayeeID: "joe@upi", Amount: 50})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if res.Status != domain.StatusSuccess || res.TransactionID != "TXNREMOTE01" {
		t.Errorf("result = %+v", res)
	}
}

func TestClientPayBadRequestIsAuthoritative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"FAILED","message":"amount must be positive"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.Pay(context.Background(), domain.PaymentIntent{MerchantName: "Joe", Amount: 50})
	if err != nil {
		t.Fatalf("a deliberate 400 FAILED must not be a transport error, got %v", err)
	}
	if res.Status != domain.StatusFailed {
		t.Errorf("status = %s, want FAILED", res.Status)
	}
}

func TestClientPayTransportErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := New(srv.URL, time.Second)
		if _, err := c.Pay(context.Background(), domain.PaymentIntent{MerchantName: "Joe", Amount: 50}); err == nil {
			t.Error("want transport error for 500")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		c := New("http://127.0.0.1:1", 100*time.Millisecond)
		if _, err := c.Pay(context.Background(), domain.PaymentIntent{MerchantName: "Joe", Amount: 50}); err == nil {
			t.Error("want transport error for unreachable endpoint")
		}
	})

	t.Run("garbage body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := New(srv.URL, time.Second)
		if _, err := c.Pay(context.Background(), domain.PaymentIntent{MerchantName: "Joe", Amount: 50}); err == nil {
			t.Error("want transport error for malformed body")
		}
	})
}
