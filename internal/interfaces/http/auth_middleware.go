package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/access"
	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// LocalPrincipal clave de Fiber Locals con el *access.Principal de la petición.
const LocalPrincipal = "principal"

// PrincipalResolver verifica el token y carga el principal (lo implementa *auth.AuthUseCase).
type PrincipalResolver interface {
	Authenticate(ctx context.Context, token string) (*access.Principal, error)
}

// bearerToken extrae el token de "Authorization: Bearer <token>".
func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return tokenString, nil
}

// AuthMiddleware valida el Bearer token, carga la cuenta local y deja el principal en c.Locals.
// Token inválido, cuenta inexistente o inactiva → 401.
func AuthMiddleware(resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		p, err := resolver.Authenticate(c.UserContext(), token)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// GetPrincipal devuelve el principal (después de AuthMiddleware) o nil.
func GetPrincipal(c *fiber.Ctx) *access.Principal {
	p, _ := c.Locals(LocalPrincipal).(*access.Principal)
	return p
}

// Authorize evalúa el predicado antes del handler. resourceParam es el parámetro de ruta
// con el id del recurso ("" si la ruta no apunta a uno). Rechazo → 403 con el motivo.
func Authorize(pred access.Predicate, resourceParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		var resourceID string
		if resourceParam != "" {
			resourceID = c.Params(resourceParam)
		}
		if d := pred(p, resourceID); !d.Allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: d.Reason})
		}
		return c.Next()
	}
}

// RequireRole atajo de Authorize para una lista de roles.
func RequireRole(roles ...entity.UserType) fiber.Handler {
	return Authorize(access.HasRole(roles...), "")
}
