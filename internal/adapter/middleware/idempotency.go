package middleware

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// IdempotencyStore caches responses by Idempotency-Key for the process
// lifetime, so a repeated "Pay" press with the same key replays the first
// answer instead of minting another transaction.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]cachedResponse
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{entries: make(map[string]cachedResponse)}
}

func (s *IdempotencyStore) get(key string) (cachedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.entries[key]
	return r, ok
}

func (s *IdempotencyStore) put(key string, r cachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[key]; !exists {
		s.entries[key] = r
	}
}

// Idempotency replays the cached response for a repeated Idempotency-Key.
// Requests without the header pass through untouched.
func Idempotency(store *IdempotencyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")
		if key == "" {
			return c.Next()
		}

		if cached, ok := store.get(key); ok {
			slog.Info("idempotency hit, returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", cached.contentType)
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())
		store.put(key, cachedResponse{
			status:      c.Response().StatusCode(),
			contentType: string(c.Response().Header.ContentType()),
			body:        body,
		})
		return nil
	}
}
