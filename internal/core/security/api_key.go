package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateAPIKey creates a secure random API key and its SHA256 hash.
// The raw key is shown to the caller once; only the hash is kept.
func GenerateAPIKey() (string, string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	realKey := fmt.Sprintf("up_live_%s", hex.EncodeToString(bytes))
	return realKey, HashKey(realKey), nil
}

// HashKey returns the hex SHA256 of an API key.
func HashKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}

// ValidateKey checks a provided API key against a stored hash.
func ValidateKey(providedKey, storedHash string) bool {
	return HashKey(providedKey) == storedHash
}
