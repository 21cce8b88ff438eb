package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
)

// AuthHandler expone la cuenta resuelta a partir del token.
// El login lo hace el cliente directamente contra el proveedor de identidad.
type AuthHandler struct{}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me godoc
// @Summary      Cuenta autenticada
// @Description  Útil para que las apps sepan el rol y el perfil de conductor tras el login.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PrincipalResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	return c.JSON(dto.PrincipalResponse{
		ID:          p.UserID,
		Email:       p.Email,
		FullName:    p.FullName,
		UserType:    string(p.UserType),
		ChauffeurID: p.ChauffeurID,
	})
}
