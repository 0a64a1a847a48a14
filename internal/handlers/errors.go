package handlers

import (
	stderrors "errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"simplewallet/internal/errors"
	"simplewallet/internal/utils/response"
)

// respondError maps a use-case error onto an HTTP response. Domain
// failures are expected outcomes; only unknown errors and consistency
// faults surface as 500s.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case stderrors.Is(err, errors.ErrWalletNotFound),
		stderrors.Is(err, errors.ErrUserNotFound):
		return response.NotFound(c, err.Error())
	case stderrors.Is(err, errors.ErrWalletExists),
		stderrors.Is(err, errors.ErrEmailExists),
		stderrors.Is(err, errors.ErrVersionConflict):
		return response.Conflict(c, err.Error())
	case stderrors.Is(err, errors.ErrInvalidAmount),
		stderrors.Is(err, errors.ErrInsufficientBalance),
		stderrors.Is(err, errors.ErrCurrencyMismatch),
		stderrors.Is(err, errors.ErrSelfTransfer):
		return response.BadRequest(c, err.Error())
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())
	case stderrors.Is(err, errors.ErrConsistencyFault):
		log.Printf("consistency fault: %v", err)
		return response.ServerError(c, err.Error())
	default:
		log.Printf("unexpected error: %v", err)
		return response.ServerError(c, "internal server error")
	}
}
