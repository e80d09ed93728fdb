package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Monish892/Payment-integration/internal/core/security"
)

type KeyHandler struct {
	Keys *security.KeyStore
}

// GenerateKey mints a fresh API key, registers its hash, and shows the raw
// key to the caller once.
func (h *KeyHandler) GenerateKey(c *fiber.Ctx) error {
	realKey, keyHash, err := security.GenerateAPIKey()
	if err != nil {
		slog.Error("crypto error generating key", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Crypto error"})
	}

	h.Keys.Add(keyHash)
	slog.Info("🔑 API key generated")

	return c.JSON(fiber.Map{
		"api_key": realKey,
		"warning": "Save this now! We won't show it again.",
	})
}
