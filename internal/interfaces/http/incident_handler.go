package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
)

// IncidentHandler reporte de incidentes desde la app móvil.
type IncidentHandler struct {
	uc  *usecase.IncidentUseCase
	val *Validator
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *usecase.IncidentUseCase, val *Validator) *IncidentHandler {
	return &IncidentHandler{uc: uc, val: val}
}

// Report godoc
// @Summary      Reportar incidente
// @Tags         mobile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "Incidente"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /mobile/incidents [post]
func (h *IncidentHandler) Report(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Report(c.UserContext(), GetPrincipal(c).ChauffeurID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
