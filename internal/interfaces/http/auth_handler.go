package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/application/auth"
	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "VALIDATION", "Email and password are required")
		case errors.Is(err, domain.ErrUnauthorized):
			return respondError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
		case errors.Is(err, domain.ErrForbidden):
			return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "Account is inactive")
		}
		return respondInternal(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}
