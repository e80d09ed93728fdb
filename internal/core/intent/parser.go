// Package intent turns raw scanned QR text into a canonical PaymentIntent.
//
// Three payload dialects are accepted, tried in priority order:
//
//  1. UPI intent URLs:  upi://pay?pa=demo@upi&pn=Demo%20Merchant&am=250
//  2. JSON objects:     {"merchant": "Joe's Cafe", "upiId": "joe@upi", "amount": 99}
//  3. Key-value pairs:  merchant: Joe's Cafe; amount: 99
//
// Parsing never fails. A payload that matches no dialect is treated as a
// bare merchant name, so a scan always yields something the user can edit.
package intent

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/Monish892/Payment-integration/internal/core/domain"
)

const payMarker = "://pay?"

var (
	merchantPattern = regexp.MustCompile(`(?i)\b(?:merchant|pn|payee)\b\s*[:=]\s*([^;,\n]+)`)
	payeePattern    = regexp.MustCompile(`(?i)\b(?:upiId|upi|pa)\b\s*[:=]\s*([^;,\n]+)`)
	amountPattern   = regexp.MustCompile(`(?i)\b(?:amount|am)\b\s*[:=]\s*([^;,\n]+)`)
)

// Parse converts raw scanned text into a PaymentIntent. It never returns an
// error: malformed payloads degrade to the key-value dialect, and an empty
// input yields an all-empty intent.
func Parse(raw string) domain.PaymentIntent {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.PaymentIntent{}
	}

	if strings.Contains(strings.ToLower(trimmed), payMarker) {
		if in, ok := parseIntentURL(trimmed); ok {
			return finalize(in)
		}
	}

	if strings.HasPrefix(trimmed, "{") {
		if in, ok := parseStructured(trimmed); ok {
			return finalize(in)
		}
	}

	return finalize(parseKeyValue(trimmed))
}

// parseIntentURL handles the upi://pay?pa=&pn=&am= dialect. Query values are
// percent-decoded by net/url; missing parameters stay empty.
func parseIntentURL(raw string) (domain.PaymentIntent, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return domain.PaymentIntent{}, false
	}
	q := u.Query()
	in := domain.PaymentIntent{
		PayeeID:      strings.TrimSpace(q.Get("pa")),
		MerchantName: strings.TrimSpace(q.Get("pn")),
	}
	if am := strings.TrimSpace(q.Get("am")); am != "" {
		if amount, err := domain.ParseAmountString(am); err == nil {
			in.Amount = amount
		}
	}
	return in, true
}

// parseStructured handles JSON payloads. Each field accepts synonyms; the
// first present key wins, in the listed order.
func parseStructured(raw string) (domain.PaymentIntent, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return domain.PaymentIntent{}, false
	}

	in := domain.PaymentIntent{
		MerchantName: firstString(obj, "merchant", "payee", "pn"),
		PayeeID:      firstString(obj, "upiId", "pa", "upi"),
	}
	if v, ok := firstValue(obj, "amount", "am"); ok {
		if amount, err := domain.ParseAmount(v); err == nil {
			in.Amount = amount
		}
	}
	return in, true
}

// parseKeyValue is the fallback dialect: case-insensitive label[:=]value
// pairs where the value runs to the next ';', ',' or newline. When nothing
// matches at all, the whole payload becomes the merchant name.
func parseKeyValue(raw string) domain.PaymentIntent {
	var in domain.PaymentIntent
	matched := false

	if m := merchantPattern.FindStringSubmatch(raw); m != nil {
		in.MerchantName = strings.TrimSpace(m[1])
		matched = true
	}
	if m := payeePattern.FindStringSubmatch(raw); m != nil {
		in.PayeeID = strings.TrimSpace(m[1])
		matched = true
	}
	if m := amountPattern.FindStringSubmatch(raw); m != nil {
		matched = true
		if amount, err := domain.ParseAmountString(m[1]); err == nil {
			in.Amount = amount
		}
	}

	if !matched {
		in.MerchantName = raw
	}
	return in
}

// finalize applies the placeholder-name rule: a payee id without a display
// name gets one derived from the id's local part, flagged as derived so it
// is never mistaken for a directory-confirmed name.
func finalize(in domain.PaymentIntent) domain.PaymentIntent {
	if in.PayeeID != "" && in.MerchantName == "" {
		in.MerchantName = domain.DeriveDisplayName(in.PayeeID)
		in.NameDerived = true
	}
	return in
}

func firstString(obj map[string]any, keys ...string) string {
	v, ok := firstValue(obj, keys...)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func firstValue(obj map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, true
		}
	}
	return nil, false
}
