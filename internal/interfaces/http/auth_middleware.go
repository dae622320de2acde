package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
	"github.com/ninjasaskeh/vr46/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(tokens *jwt.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header is required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Expected format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Empty token")
		}
		id, err := tokens.Verify(tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, entity.Role(id.Role))
		return c.Next()
	}
}

// RequireRole autoriza sólo los roles indicados. Debe ir DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(roles ...entity.Role) fiber.Handler {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respondError(c, fiber.StatusUnauthorized, "MISSING_ROLE", "Token has no role")
		}
		if _, ok := allowed[role]; !ok {
			return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	r, _ := v.(entity.Role)
	return r
}
