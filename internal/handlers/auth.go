// Package handlers maps HTTP requests onto the use-case services.
// Request shape validation lives here; domain invariants live in the
// aggregates.
package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"simplewallet/internal/services/auth"
	"simplewallet/internal/utils/response"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return response.BadRequest(c, "a valid email is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "password must be at least 8 characters")
	}

	user, token, err := h.service.Register(c.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "registration successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	user, token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}
