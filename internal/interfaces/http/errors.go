package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/application/dto"
	"github.com/ninjasaskeh/vr46/internal/domain"
)

// localCause guarda el error original para que RequestLogger lo registre.
const localCause = "error_cause"

func respondError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Error: message})
}

func respondValidation(c *fiber.Ctx, message string, verr *domain.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Success: false,
		Code:    "VALIDATION",
		Error:   message,
		Details: verr.Fields,
	})
}

func respondInternal(c *fiber.Ctx, err error) error {
	c.Locals(localCause, err)
	return respondError(c, fiber.StatusInternalServerError, "INTERNAL", "Internal server error")
}

// notFoundMessage "material" → "Material not found".
func notFoundMessage(entity string) string {
	if entity == "" {
		return "Resource not found"
	}
	return strings.ToUpper(entity[:1]) + entity[1:] + " not found"
}

// handleError traduce errores de dominio a respuestas HTTP para los endpoints del dashboard.
func handleError(c *fiber.Ctx, err error) error {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return respondValidation(c, "Validation failed", verr)
	case errors.As(err, &nf):
		return respondError(c, fiber.StatusNotFound, "NOT_FOUND", notFoundMessage(nf.Entity))
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, "INVALID_INPUT", "Invalid input")
	case errors.Is(err, domain.ErrInvalidWeight):
		return respondError(c, fiber.StatusBadRequest, "INVALID_WEIGHT", "Net weight must be positive (gross weight > tare weight)")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondError(c, fiber.StatusConflict, "EMAIL_EXISTS", "Email is already registered")
	case errors.Is(err, domain.ErrDuplicate):
		return respondError(c, fiber.StatusConflict, "DUPLICATE", "Resource already exists")
	case errors.Is(err, domain.ErrInvalidTransition):
		return respondError(c, fiber.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
	case errors.Is(err, domain.ErrConflict):
		return respondError(c, fiber.StatusConflict, "CONFLICT", "Operation conflicts with the current state")
	case errors.Is(err, domain.ErrNotOperator):
		return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "User is not authorized as an operator")
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	case errors.Is(err, domain.ErrUnauthorized):
		return respondError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
	default:
		return respondInternal(c, err)
	}
}

// ok envuelve data en {success:true, data}.
func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Data: data})
}

// okPage envuelve un listado paginado.
func okPage(c *fiber.Ctx, data any, p dto.Pagination) error {
	return c.JSON(dto.APIResponse{Success: true, Data: data, Pagination: &p})
}

// pageFrom lee ?page y ?limit.
func pageFrom(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 10)}
}
