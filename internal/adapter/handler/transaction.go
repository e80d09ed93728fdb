package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Monish892/Payment-integration/internal/adapter/storage"
	"github.com/Monish892/Payment-integration/internal/core/domain"
)

type TransactionHandler struct {
	Ledger *storage.Ledger
}

// GetTransaction looks up a settled transaction by id, for receipts and
// support queries. Failed transactions are retrievable too.
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id := c.Params("id")

	tx, err := h.Ledger.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": domain.StatusFailed, "message": "not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "Could not fetch transaction",
		})
	}

	return c.JSON(tx)
}

// ListTransactions returns every recorded transaction in insertion order.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       domain.StatusSuccess,
		"transactions": h.Ledger.List(),
	})
}
