package handlers

import (
	stderrors "errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"simplewallet/internal/models"
	"simplewallet/internal/services/wallet"
	"simplewallet/internal/utils/response"
)

// WalletHandler exposes wallet endpoints for the authenticated user.
type WalletHandler struct {
	service wallet.Service
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

type amountRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

var errBadAmountRequest = stderrors.New("currency must be a 3-letter code")

func (r *amountRequest) validate() error {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if len(r.Currency) != 3 {
		return errBadAmountRequest
	}
	return nil
}

// CreateWallet handles POST /api/wallets.
func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if len(req.Currency) != 3 {
		return response.BadRequest(c, "currency must be a 3-letter code")
	}

	w, err := h.service.CreateWallet(c.Context(), claims.UserID, req.Currency)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "wallet created", fiber.Map{
		"wallet": w,
	})
}

// GetWallet handles GET /api/wallets.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	w, err := h.service.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "wallet", fiber.Map{
		"wallet": w,
	})
}

// Deposit handles POST /api/wallets/deposit.
func (h *WalletHandler) Deposit(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := req.validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	w, err := h.service.Deposit(c.Context(), claims.UserID, req.Amount, req.Currency)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "deposit successful", fiber.Map{
		"balance": w.Balance,
	})
}

// Withdraw handles POST /api/wallets/withdraw.
func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if err := req.validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	w, err := h.service.Withdraw(c.Context(), claims.UserID, req.Amount, req.Currency)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "withdrawal successful", fiber.Map{
		"balance": w.Balance,
	})
}
