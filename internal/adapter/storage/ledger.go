package storage

import (
	"fmt"
	"sync"

	"github.com/Monish892/Payment-integration/internal/core/domain"
)

// Ledger is the in-memory transaction store. Transactions are insert-once
// and never deleted; the ledger lives for the lifetime of the process.
// All access goes through the mutex so request handlers can share it.
type Ledger struct {
	mu    sync.RWMutex
	txns  map[string]domain.Transaction
	order []string
}

func NewLedger() *Ledger {
	return &Ledger{txns: make(map[string]domain.Transaction)}
}

// Insert records a transaction. It fails with ErrDuplicateID when the id is
// already taken; callers decide whether to regenerate.
func (l *Ledger) Insert(tx domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.txns[tx.TransactionID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, tx.TransactionID)
	}
	l.txns[tx.TransactionID] = tx
	l.order = append(l.order, tx.TransactionID)
	return nil
}

// Get returns the transaction with the given id, or ErrNotFound.
func (l *Ledger) Get(id string) (domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tx, ok := l.txns[id]
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return tx, nil
}

// List returns all transactions in insertion order.
func (l *Ledger) List() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.txns[id])
	}
	return out
}

// Len reports how many transactions have been recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}
