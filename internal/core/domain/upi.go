package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UPI ids look like "name@bank": a local part, an @, and a handle.
// We only validate the shape, nothing about real banks.
var upiIDPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// ValidUPIID reports whether id has an @-separated domain part.
func ValidUPIID(id string) bool {
	return upiIDPattern.MatchString(strings.TrimSpace(id))
}

// LocalPart returns the text before the @, or the whole id if there is none.
func LocalPart(id string) string {
	if at := strings.IndexByte(id, '@'); at >= 0 {
		return id[:at]
	}
	return id
}

// DeriveDisplayName synthesizes a placeholder merchant name from a payee id
// by capitalizing the first rune of its local part. "rahul@bank" -> "Rahul".
// Callers must treat a derived name as unverified.
func DeriveDisplayName(id string) string {
	local := strings.TrimSpace(LocalPart(id))
	if local == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(r)) + local[size:]
}
