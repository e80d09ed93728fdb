// Package resolver decides the outcome of a payment simulation and records
// it in the ledger.
package resolver

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Monish892/Payment-integration/internal/core/domain"
)

// successRate is the simulated approval ratio. The 10% failure band is a
// deliberate bit of realistic noise, not an error path to tune away.
const successRate = 0.9

const (
	idPrefix  = "TXN"
	idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength  = 8
)

// Source supplies the randomness behind outcome draws and id minting.
// *rand.Rand satisfies it; tests inject a seeded source for determinism.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a seeded math/rand source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Ledger is the slice of the transaction store the resolver needs.
type Ledger interface {
	Insert(tx domain.Transaction) error
}

// Resolver mints transactions with a weighted random outcome and inserts
// them into the ledger before handing them back.
type Resolver struct {
	ledger Ledger

	mu  sync.Mutex // rand sources are not safe for concurrent use
	rng Source
}

func New(ledger Ledger, rng Source) *Resolver {
	return &Resolver{ledger: ledger, rng: rng}
}

// Resolve settles a payment intent: 90% SUCCESS, 10% FAILED. The returned
// transaction is already recorded in the ledger; failed transactions get a
// ledger entry too, for support lookups.
//
// Callers are expected to validate the intent before submission; Resolve
// still rejects bad input so a ledger entry can never exist for it.
func (r *Resolver) Resolve(in domain.PaymentIntent) (domain.Transaction, error) {
	if !domain.ValidAmount(in.Amount) {
		return domain.Transaction{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, in.Amount)
	}
	if in.MerchantName == "" && in.PayeeID == "" {
		return domain.Transaction{}, domain.ErrMissingPayee
	}

	payeeName := in.MerchantName
	if payeeName == "" {
		payeeName = domain.DeriveDisplayName(in.PayeeID)
	}

	r.mu.Lock()
	status := domain.StatusFailed
	if r.rng.Float64() < successRate {
		status = domain.StatusSuccess
	}
	id := r.mintID()
	r.mu.Unlock()

	tx := domain.Transaction{
		TransactionID: id,
		Amount:        domain.RoundPaise(in.Amount),
		PayeeName:     payeeName,
		PayeeID:       in.PayeeID,
		Status:        status,
		CreatedAt:     time.Now(),
	}

	if err := r.ledger.Insert(tx); err != nil {
		// Collisions should not happen in an 8-char id space within one
		// process run, but regenerate once before giving up.
		r.mu.Lock()
		tx.TransactionID = r.mintID()
		r.mu.Unlock()
		if err := r.ledger.Insert(tx); err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: %v", domain.ErrLedgerCollision, err)
		}
	}
	return tx, nil
}

// mintID produces ids like "TXN7F8A92KX". Callers must hold r.mu.
func (r *Resolver) mintID() string {
	buf := make([]byte, idLength)
	for i := range buf {
		buf[i] = idCharset[r.rng.Intn(len(idCharset))]
	}
	return idPrefix + string(buf)
}
