// Package orchestrator is the single entry point for payment submissions.
// It tries the remote resolution endpoint first and falls back to the local
// resolver on any transport failure, so the user-facing flow never depends
// on a backend being reachable.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/Monish892/Payment-integration/internal/core/domain"
	"github.com/Monish892/Payment-integration/internal/core/resolver"
)

// DefaultMinLatency is the floor on perceived processing time. An instant
// "payment" reads as fake, so the receipt is held back until this elapses.
const DefaultMinLatency = 1500 * time.Millisecond

// RemoteResult is a remote endpoint's answer to a payment submission.
type RemoteResult struct {
	TransactionID string
	Status        domain.TransactionStatus
	Message       string
	Timestamp     time.Time
}

// RemoteChannel is the outbound payment-resolution call. Implementations
// return an error only for transport-level failures; an application-level
// FAILED comes back as a result.
type RemoteChannel interface {
	Pay(ctx context.Context, in domain.PaymentIntent) (RemoteResult, error)
}

type Orchestrator struct {
	resolver   *resolver.Resolver
	remote     RemoteChannel // nil means local-only
	minLatency time.Duration
	timeout    time.Duration
	logger     *slog.Logger
}

// Options tunes the orchestrator; zero values pick the defaults.
type Options struct {
	MinLatency    time.Duration
	RemoteTimeout time.Duration
}

func New(res *resolver.Resolver, remote RemoteChannel, opts Options) *Orchestrator {
	if opts.MinLatency == 0 {
		opts.MinLatency = DefaultMinLatency
	}
	if opts.RemoteTimeout == 0 {
		opts.RemoteTimeout = 3 * time.Second
	}
	return &Orchestrator{
		resolver:   res,
		remote:     remote,
		minLatency: opts.MinLatency,
		timeout:    opts.RemoteTimeout,
		logger:     slog.Default(),
	}
}

// SubmitPayment validates the intent, resolves it remotely or locally, and
// returns the receipt once both the resolution and the minimum-latency
// floor have settled.
//
// If ctx is cancelled the wait is abandoned, but the in-flight resolution
// runs to completion and its ledger write stands; only the receipt is
// discarded.
func (o *Orchestrator) SubmitPayment(ctx context.Context, in domain.PaymentIntent) (domain.Receipt, error) {
	if !domain.ValidAmount(in.Amount) {
		return domain.Receipt{}, &domain.ValidationError{Field: "amount", Message: "amount must be a positive number"}
	}
	if in.MerchantName == "" {
		return domain.Receipt{}, &domain.ValidationError{Field: "payeeName", Message: "merchant name is required"}
	}

	floor := time.NewTimer(o.minLatency)
	defer floor.Stop()

	done := make(chan domain.Receipt, 1)
	go func() {
		done <- o.resolve(in)
	}()

	var receipt domain.Receipt
	select {
	case receipt = <-done:
	case <-ctx.Done():
		return domain.Receipt{}, ctx.Err()
	}

	select {
	case <-floor.C:
	case <-ctx.Done():
		return domain.Receipt{}, ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		// Abandoned while we were waiting: the settlement stands in the
		// ledger, only the receipt is discarded.
		return domain.Receipt{}, err
	}
	return receipt, nil
}

// resolve attempts the remote channel and falls back to the local resolver.
// A deliberate remote FAILED is authoritative and does not fall back; only
// transport failures do. Deliberately detached from the caller's context:
// an abandoned submission still settles.
func (o *Orchestrator) resolve(in domain.PaymentIntent) domain.Receipt {
	if o.remote != nil {
		rctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		res, err := o.remote.Pay(rctx, in)
		cancel()
		if err == nil {
			return remoteReceipt(in, res)
		}
		o.logger.Warn("remote resolution unavailable, falling back to local",
			"error", err, "payee", in.PayeeID)
	}

	tx, err := o.resolver.Resolve(in)
	if err != nil {
		// Validation already passed, so this is the internal-error band
		// (exhausted id regeneration). Surface a generic failure.
		o.logger.Error("local resolution failed", "error", err)
		return domain.Receipt{
			Status:    domain.StatusFailed,
			Message:   "Payment could not be processed. Please try again.",
			Timestamp: time.Now(),
			Source:    domain.SourceLocal,
		}
	}
	return transactionReceipt(tx, domain.SourceLocal)
}

func remoteReceipt(in domain.PaymentIntent, res RemoteResult) domain.Receipt {
	ts := res.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	r := domain.Receipt{
		TransactionID: res.TransactionID,
		Status:        res.Status,
		Message:       res.Message,
		Timestamp:     ts,
		Source:        domain.SourceRemote,
	}
	switch res.Status {
	case domain.StatusSuccess:
		r.Amount = domain.RoundPaise(in.Amount)
		r.PayeeName = in.MerchantName
		r.PayeeID = in.PayeeID
		if r.Message == "" {
			r.Message = "Payment successful"
		}
	case domain.StatusPending:
		// Advisory, non-terminal: the caller may poll the transaction later.
		if r.Message == "" {
			r.Message = "Payment is being processed"
		}
	default:
		if r.Message == "" {
			r.Message = "Payment failed. Please try again."
		}
	}
	return r
}

func transactionReceipt(tx domain.Transaction, src domain.ReceiptSource) domain.Receipt {
	r := domain.Receipt{
		TransactionID: tx.TransactionID,
		Status:        tx.Status,
		Timestamp:     tx.CreatedAt,
		Source:        src,
	}
	if tx.Status == domain.StatusSuccess {
		r.Amount = tx.Amount
		r.PayeeName = tx.PayeeName
		r.PayeeID = tx.PayeeID
		r.Message = domain.FormatINR(tx.Amount) + " paid to " + tx.PayeeName
	} else {
		r.Message = "Payment failed. Please try again."
	}
	return r
}
