package security

import "sync"

// KeyStore holds the hashes of accepted API keys in memory.
type KeyStore struct {
	mu     sync.RWMutex
	hashes map[string]struct{}
}

func NewKeyStore() *KeyStore {
	return &KeyStore{hashes: make(map[string]struct{})}
}

// Add registers a key hash.
func (s *KeyStore) Add(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[hash] = struct{}{}
}

// Valid reports whether the provided raw key matches any stored hash.
func (s *KeyStore) Valid(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hashes[HashKey(key)]
	return ok
}

// Empty reports whether no keys are registered.
func (s *KeyStore) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hashes) == 0
}
