package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"simplewallet/internal/services/transfer"
	"simplewallet/internal/utils/response"
)

// TransferHandler exposes the wallet-to-wallet transfer endpoint.
type TransferHandler struct {
	service transfer.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(service transfer.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// Transfer handles POST /api/wallets/transfer. A 409 response means
// the wallet changed underneath the request; the client may retry.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req struct {
		DestinationUserID uuid.UUID       `json:"destination_user_id"`
		Amount            decimal.Decimal `json:"amount"`
		Currency          string          `json:"currency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if req.DestinationUserID == uuid.Nil {
		return response.BadRequest(c, "destination_user_id is required")
	}
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(req.Currency) != 3 {
		return response.BadRequest(c, "currency must be a 3-letter code")
	}

	if err := h.service.Transfer(c.Context(), claims.UserID, req.DestinationUserID, req.Amount, req.Currency); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "transfer successful", fiber.Map{
		"destination_user_id": req.DestinationUserID,
		"amount":              req.Amount,
		"currency":            req.Currency,
	})
}
