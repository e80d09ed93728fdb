package domain

import "time"

type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
	StatusPending TransactionStatus = "PENDING"
)

// PaymentIntent is the canonical "who to pay, how much" parsed from a
// scanned QR payload or entered manually. It lives only for the duration
// of a single submission and is never stored.
type PaymentIntent struct {
	MerchantName string
	PayeeID      string
	Amount       float64

	// NameDerived is set when MerchantName was synthesized from the
	// payee id's local part rather than read from the payload or the
	// merchant directory.
	NameDerived bool

	// Verified is set only when the merchant directory confirmed the name.
	Verified bool
}

// MerchantRecord is static reference data for a known payee id.
type MerchantRecord struct {
	DisplayName string
	Verified    bool
}

// Transaction represents a settled payment simulation. Status is assigned
// exactly once at resolution time and never changes; a retry mints a new
// transaction instead.
type Transaction struct {
	TransactionID string            `json:"transactionId"`
	Amount        float64           `json:"amount"`
	PayeeName     string            `json:"payeeName"`
	PayeeID       string            `json:"upiId"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"timestamp"`
}

// ReceiptSource tags which resolution path produced a receipt.
type ReceiptSource string

const (
	SourceRemote ReceiptSource = "remote"
	SourceLocal  ReceiptSource = "local"
)

// Receipt is the outcome returned to the caller after a submission
// completes, whether the remote channel or the local resolver settled it.
// Failed receipts deliberately carry no payee/amount echo.
type Receipt struct {
	TransactionID string            `json:"transactionId"`
	Status        TransactionStatus `json:"status"`
	Amount        float64           `json:"amount,omitempty"`
	PayeeName     string            `json:"payeeName,omitempty"`
	PayeeID       string            `json:"upiId,omitempty"`
	Message       string            `json:"message"`
	Timestamp     time.Time         `json:"timestamp"`
	Source        ReceiptSource     `json:"-"`
}
