package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/Monish892/Payment-integration/internal/core/domain"
)

func tx(id string, amount float64) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        amount,
		PayeeName:     "Demo Merchant",
		PayeeID:       "demo@upi",
		Status:        domain.StatusSuccess,
		CreatedAt:     time.Now(),
	}
}

func TestLedgerInsertGet(t *testing.T) {
	l := NewLedger()

	want := tx("TXN7F8A92KX", 250)
	if err := l.Insert(want); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := l.Get("TXN7F8A92KX")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestLedgerDuplicateID(t *testing.T) {
	l := NewLedger()
	if err := l.Insert(tx("TXNAAAA1111", 10)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := l.Insert(tx("TXNAAAA1111", 20))
	if !errors.Is(err, domain.ErrDuplicateID) {
		t.Errorf("second Insert error = %v, want ErrDuplicateID", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len = %d after duplicate insert, want 1", l.Len())
	}
}

func TestLedgerGetUnknown(t *testing.T) {
	l := NewLedger()
	_, err := l.Get("TXNMISSING1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get unknown error = %v, want ErrNotFound", err)
	}
}

func TestLedgerListOrder(t *testing.T) {
	l := NewLedger()
	ids := []string{"TXN00000001", "TXN00000002", "TXN00000003"}
	for i, id := range ids {
		if err := l.Insert(tx(id, float64(i+1))); err != nil {
			t.Fatalf("Insert %s: %v", id, err)
		}
	}

	list := l.List()
	if len(list) != len(ids) {
		t.Fatalf("List len = %d, want %d", len(list), len(ids))
	}
	for i, id := range ids {
		if list[i].TransactionID != id {
			t.Errorf("List[%d] = %s, want %s (insertion order)", i, list[i].TransactionID, id)
		}
	}
}

func TestDirectoryResolveName(t *testing.T) {
	d := NewDirectoryWith(map[string]domain.MerchantRecord{
		"demo@upi": {DisplayName: "Demo Merchant", Verified: true},
	})

	name, verified := d.ResolveName("demo@upi")
	if name != "Demo Merchant" || !verified {
		t.Errorf("ResolveName(known) = %q/%v, want Demo Merchant/true", name, verified)
	}

	name, verified = d.ResolveName("rahul@bank")
	if name != "Rahul" || verified {
		t.Errorf("ResolveName(unknown) = %q/%v, want derived Rahul/false", name, verified)
	}
}
