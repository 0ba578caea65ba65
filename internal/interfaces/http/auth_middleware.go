package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/pkg/jwt"
)

// Locals keys cargadas por RequireAdmin.
const (
	LocalRole    = "role"
	LocalTokenID = "token_id"
)

// adminAuthorizer contrato mínimo del middleware. Lo implementa *admin.UseCase.
type adminAuthorizer interface {
	Authorize(ctx context.Context, token string) (*jwt.Claims, error)
}

// RequireAdmin valida el Bearer Token y que la bandera de administración siga activa.
//
// Comportamiento:
//   - 401 MISSING_TOKEN / INVALID_TOKEN → header ausente o mal formado, firma o rol inválidos,
//     o sesión del panel cerrada (logout invalida todos los tokens).
//   - 503 → fallo del almacén al leer la bandera.
func RequireAdmin(auth adminAuthorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := auth.Authorize(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o sesión cerrada"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
		}
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalTokenID, claims.ID)
		return c.Next()
	}
}

// GetRole devuelve el rol del token (después de RequireAdmin).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetTokenID devuelve el jti del token (después de RequireAdmin).
func GetTokenID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTokenID).(string)
	return s
}
