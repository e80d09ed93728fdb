// Package remote calls an external payment-resolution endpoint.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Monish892/Payment-integration/internal/core/domain"
	"github.com/Monish892/Payment-integration/internal/core/orchestrator"
)

// Client posts payment submissions to another resolution service's /pay
// endpoint. Errors are transport-level only; a parseable FAILED answer is
// returned as a result so the orchestrator treats it as authoritative.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type payRequest struct {
	Amount    float64 `json:"amount"`
	PayeeName string  `json:"payeeName"`
	UpiID     string  `json:"upiId"`
}

type payResponse struct {
	Status        domain.TransactionStatus `json:"status"`
	TransactionID string                   `json:"transactionId"`
	Message       string                   `json:"message"`
	Timestamp     time.Time                `json:"timestamp"`
}

func (c *Client) Pay(ctx context.Context, in domain.PaymentIntent) (orchestrator.RemoteResult, error) {
	body, err := json.Marshal(payRequest{
		Amount:    in.Amount,
		PayeeName: in.MerchantName,
		UpiID:     in.PayeeID,
	})
	if err != nil {
		return orchestrator.RemoteResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pay", bytes.NewReader(body))
	if err != nil {
		return orchestrator.RemoteResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "UPIPay-Client/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return orchestrator.RemoteResult{}, err
	}
	defer resp.Body.Close()

	// 2xx carries the resolution; 400 carries a deliberate FAILED answer.
	// Anything else is a transport failure and triggers local fallback.
	if (resp.StatusCode < 200 || resp.StatusCode >= 300) && resp.StatusCode != http.StatusBadRequest {
		return orchestrator.RemoteResult{}, fmt.Errorf("remote endpoint returned %d", resp.StatusCode)
	}

	var pr payResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return orchestrator.RemoteResult{}, fmt.Errorf("malformed remote response: %w", err)
	}
	if pr.Status == "" {
		return orchestrator.RemoteResult{}, fmt.Errorf("remote response missing status")
	}

	return orchestrator.RemoteResult{
		TransactionID: pr.TransactionID,
		Status:        pr.Status,
		Message:       pr.Message,
		Timestamp:     pr.Timestamp,
	}, nil
}
