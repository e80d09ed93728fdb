package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when an amount is absent, non-numeric or not positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingPayee is returned when neither a merchant name nor a payee id is known.
	ErrMissingPayee = errors.New("missing payee")

	// ErrDuplicateID is returned by the ledger when a transaction id is already taken.
	ErrDuplicateID = errors.New("duplicate transaction id")

	// ErrNotFound is returned by the ledger for unknown transaction ids.
	ErrNotFound = errors.New("transaction not found")

	// ErrLedgerCollision means id regeneration collided twice in a row.
	// This should never happen with the TXN id space and is treated as fatal.
	ErrLedgerCollision = errors.New("ledger id collision")
)

// ValidationError rejects a submission before any resolution is attempted.
// It is shown inline to the user and never reaches the ledger.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
