package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Monish892/Payment-integration/internal/core/domain"
	"github.com/Monish892/Payment-integration/internal/core/orchestrator"
	"github.com/Monish892/Payment-integration/internal/core/worker"
)

type PaymentHandler struct {
	Flow  *orchestrator.Orchestrator
	Hooks *worker.WebhookWorker
}

// PayRequest is the /pay body. Amount stays untyped because scanned
// frontends send it as either a number or a string.
type PayRequest struct {
	Amount    any    `json:"amount"`
	PayeeName string `json:"payeeName"`
	UpiID     string `json:"upiId"`
}

// MakePayment drives the full submit flow: validate, resolve remotely with
// local fallback, and answer with a receipt once the latency floor passed.
func (h *PaymentHandler) MakePayment(c *fiber.Ctx) error {
	var req PayRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("invalid pay body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "Invalid body",
		})
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "amount must be a positive number",
		})
	}

	in := domain.PaymentIntent{
		MerchantName: strings.TrimSpace(req.PayeeName),
		PayeeID:      strings.TrimSpace(req.UpiID),
		Amount:       amount,
	}

	receipt, err := h.Flow.SubmitPayment(c.Context(), in)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": domain.StatusFailed, "message": ve.Message,
			})
		}
		slog.Error("payment submission failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "Payment could not be processed",
		})
	}

	slog.Info("payment settled",
		"transaction_id", receipt.TransactionID,
		"status", receipt.Status,
		"source", receipt.Source,
	)
	h.Hooks.EnqueueReceipt(receipt)

	return c.JSON(receipt)
}
