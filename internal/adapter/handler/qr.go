package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Monish892/Payment-integration/internal/adapter/storage"
	"github.com/Monish892/Payment-integration/internal/core/domain"
	"github.com/Monish892/Payment-integration/internal/core/intent"
)

// QRHandler covers the QR side of the flow: building intent URLs for
// merchants and decoding scanned payloads for payers.
type QRHandler struct {
	Directory *storage.Directory
}

type GenerateQRRequest struct {
	MerchantName string `json:"merchantName"`
	UpiID        string `json:"upiId"`
	Amount       any    `json:"amount"`
}

// GenerateQR builds the canonical upi://pay intent URL for the given
// fields. Absent fields are simply left out of the query.
func (h *QRHandler) GenerateQR(c *fiber.Ctx) error {
	var req GenerateQRRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "Invalid body",
		})
	}

	name := strings.TrimSpace(req.MerchantName)
	upiID := strings.TrimSpace(req.UpiID)
	if name == "" && upiID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "merchantName or upiId is required",
		})
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "amount must be a number",
		})
	}

	v := url.Values{}
	if upiID != "" {
		v.Set("pa", upiID)
	}
	if name != "" {
		v.Set("pn", name)
	}
	if amount > 0 {
		v.Set("am", strconv.FormatFloat(amount, 'f', -1, 64))
	}

	return c.JSON(fiber.Map{
		"status": domain.StatusSuccess,
		"qrData": "upi://pay?" + v.Encode(),
		"details": fiber.Map{
			"merchantName": name,
			"upiId":        upiID,
			"amount":       amount,
		},
	})
}

type ScanQRRequest struct {
	UpiID   string `json:"upiId"`
	RawData string `json:"rawData"`
}

// ScanQR resolves a scanned payload (rawData) or a bare payee id into a
// displayable payee. Unknown ids get a name derived from the id's local
// part and verified=false.
func (h *QRHandler) ScanQR(c *fiber.Ctx) error {
	var req ScanQRRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "Invalid body",
		})
	}

	if raw := strings.TrimSpace(req.RawData); raw != "" {
		in := intent.Parse(raw)
		payeeName, verified := in.MerchantName, in.Verified
		if in.PayeeID != "" {
			if rec, ok := h.Directory.Lookup(in.PayeeID); ok {
				payeeName, verified = rec.DisplayName, rec.Verified
			}
		}
		resp := fiber.Map{
			"status":    domain.StatusSuccess,
			"payeeName": payeeName,
			"upiId":     in.PayeeID,
			"verified":  verified,
		}
		if in.Amount > 0 {
			resp["amount"] = in.Amount
		}
		return c.JSON(resp)
	}

	upiID := strings.TrimSpace(req.UpiID)
	if upiID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": domain.StatusFailed, "message": "upiId or rawData is required",
		})
	}

	name, verified := h.Directory.ResolveName(upiID)
	return c.JSON(fiber.Map{
		"status":    domain.StatusSuccess,
		"payeeName": name,
		"upiId":     upiID,
		"verified":  verified,
	})
}

type ValidateUPIRequest struct {
	UpiID string `json:"upiId"`
}

// ValidateUPI checks the shape of a UPI id. INVALID means the id lacks an
// @-separated handle; a valid shape also reports the known or derived name.
func (h *QRHandler) ValidateUPI(c *fiber.Ctx) error {
	var req ValidateUPIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "INVALID", "message": "Invalid body",
		})
	}

	upiID := strings.TrimSpace(req.UpiID)
	if !domain.ValidUPIID(upiID) {
		return c.JSON(fiber.Map{
			"status":  "INVALID",
			"message": "UPI id must look like name@bank",
		})
	}

	name, verified := h.Directory.ResolveName(upiID)
	return c.JSON(fiber.Map{
		"status":    "VALID",
		"payeeName": name,
		"verified":  verified,
	})
}
