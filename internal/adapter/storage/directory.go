package storage

import "github.com/Monish892/Payment-integration/internal/core/domain"

// Directory is the static merchant lookup: payee id to verified display
// name. Loaded once at startup and never mutated, so reads need no locking.
type Directory struct {
	records map[string]domain.MerchantRecord
}

// NewDirectory seeds the simulator's known merchants. Unknown payee ids are
// not an error; callers fall back to a name derived from the id itself.
func NewDirectory() *Directory {
	return NewDirectoryWith(map[string]domain.MerchantRecord{
		"demo@upi":        {DisplayName: "Demo Merchant", Verified: true},
		"joescafe@okaxis": {DisplayName: "Joe's Cafe", Verified: true},
		"chai@paytm":      {DisplayName: "Chai Point", Verified: true},
		"bookstore@ybl":   {DisplayName: "City Book Store", Verified: true},
		"kirana@okicici":  {DisplayName: "Sharma Kirana", Verified: false},
	})
}

// NewDirectoryWith builds a directory from explicit records, used by tests.
func NewDirectoryWith(records map[string]domain.MerchantRecord) *Directory {
	return &Directory{records: records}
}

// Lookup returns the record for a payee id, if one exists.
func (d *Directory) Lookup(payeeID string) (domain.MerchantRecord, bool) {
	rec, ok := d.records[payeeID]
	return rec, ok
}

// ResolveName returns the display name and verification flag for a payee
// id, deriving an unverified placeholder name when the id is unknown.
func (d *Directory) ResolveName(payeeID string) (string, bool) {
	if rec, ok := d.records[payeeID]; ok {
		return rec.DisplayName, rec.Verified
	}
	return domain.DeriveDisplayName(payeeID), false
}
