package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/mission"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// MissionHandler endpoints de misiones para administración y app móvil.
type MissionHandler struct {
	uc  *mission.UseCase
	val *Validator
}

// NewMissionHandler construye el handler.
func NewMissionHandler(uc *mission.UseCase, val *Validator) *MissionHandler {
	return &MissionHandler{uc: uc, val: val}
}

// Create godoc
// @Summary      Crear misión
// @Tags         missions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMissionRequest  true  "Datos de la misión"
// @Success      201   {object}  dto.MissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/missions [post]
func (h *MissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMissionRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar misiones
// @Tags         missions
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Programme | En_cours | Termine | Annule"
// @Param        clientId     query  int     false  "Cliente"
// @Param        chauffeurId  query  int     false  "Conductor (salida o llegada)"
// @Param        dateFrom     query  string  false  "Desde (dateDepart)"
// @Param        dateTo       query  string  false  "Hasta (dateDepart)"
// @Param        search       query  string  false  "Código, cliente, conductor o matrícula"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Límite"  default(10)
// @Success      200          {object}  dto.PageResponse[dto.MissionResponse]
// @Router       /admin/missions [get]
func (h *MissionHandler) List(c *fiber.Ctx) error {
	var q dto.MissionListQuery
	if err := bindQuery(c, h.val, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener misión
// @Tags         missions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la misión"
// @Success      200  {object}  dto.MissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/missions/{id} [get]
func (h *MissionHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatusAdmin godoc
// @Summary      Cambiar estado de una misión
// @Tags         missions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la misión"
// @Param        body  body  dto.UpdateMissionStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MissionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/missions/{id}/status [patch]
func (h *MissionHandler) UpdateStatusAdmin(c *fiber.Ctx) error {
	id, in, err := h.statusInput(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateStatusByAdmin(c.UserContext(), id, entity.MissionStatus(in.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatusMobile godoc
// @Summary      Cambiar estado de una misión propia
// @Description  Solo el conductor de salida puede cambiarlo; una misión ajena responde 404.
// @Tags         mobile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la misión"
// @Param        body  body  dto.UpdateMissionStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MissionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /mobile/missions/{id}/status [patch]
func (h *MissionHandler) UpdateStatusMobile(c *fiber.Ctx) error {
	id, in, err := h.statusInput(c)
	if err != nil {
		return writeError(c, err)
	}
	chauffeurID := GetPrincipal(c).ChauffeurID
	if chauffeurID == nil {
		return writeError(c, fmt.Errorf("misión %d: %w", id, domain.ErrNotFound))
	}
	out, err := h.uc.UpdateStatusByChauffeur(c.UserContext(), id, *chauffeurID, entity.MissionStatus(in.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *MissionHandler) statusInput(c *fiber.Ctx) (int64, dto.UpdateMissionStatusRequest, error) {
	var in dto.UpdateMissionStatusRequest
	id, err := paramID(c, "id")
	if err != nil {
		return 0, in, err
	}
	if err := bindJSON(c, h.val, &in); err != nil {
		return 0, in, err
	}
	return id, in, nil
}

// MyActive godoc
// @Summary      Misiones activas del conductor
// @Description  Programme y En_cours ordenadas por fecha de salida; lista vacía sin perfil de conductor.
// @Tags         mobile
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MissionResponse
// @Router       /mobile/missions/my-active [get]
func (h *MissionHandler) MyActive(c *fiber.Ctx) error {
	out, err := h.uc.ActiveForChauffeur(c.UserContext(), GetPrincipal(c).ChauffeurID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Hoja de misión en PDF
// @Tags         missions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la misión"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/missions/{id}/pdf [get]
func (h *MissionHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.uc.GeneratePDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
