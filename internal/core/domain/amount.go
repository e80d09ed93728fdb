package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amounts are decimal rupees. QR payloads and request bodies carry them as
// either JSON numbers or strings ("250", "₹250.00"), so parsing has to be
// tolerant of both.

// ParseAmount converts a decoded JSON value into a rupee amount.
// A nil or empty value yields 0 without an error (amount not supplied yet).
func ParseAmount(v any) (float64, error) {
	switch a := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return a, nil
	case int:
		return float64(a), nil
	case int64:
		return float64(a), nil
	case json.Number:
		f, err := a.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, a.String())
		}
		return f, nil
	case string:
		return ParseAmountString(a)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}
}

// ParseAmountString parses a textual amount, stripping a currency marker
// and digit separators first.
func ParseAmountString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return f, nil
}

// RoundPaise rounds an amount to two decimal places.
func RoundPaise(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatINR renders an amount for receipt messages, e.g. "₹250.00".
func FormatINR(amount float64) string {
	return fmt.Sprintf("₹%.2f", RoundPaise(amount))
}

// ValidAmount reports whether amount is a positive, finite rupee value.
func ValidAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
