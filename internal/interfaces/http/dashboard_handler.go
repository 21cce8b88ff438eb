package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/cargopilot-api/internal/application/analytics"
)

// DashboardHandler analítica del panel de administración.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetAnalytics devuelve KPIs, serie diaria de 7 días, reparto de gastos y duración media mensual.
// GET /admin/dashboard/analytics
//
// Las sub-consultas se ejecutan en paralelo; cualquier error aborta la respuesta completa.
//
// @Summary      Analítica del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardAnalyticsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/dashboard/analytics [get]
func (h *DashboardHandler) GetAnalytics(c *fiber.Ctx) error {
	out, err := h.uc.GetAnalytics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
