package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
)

// VehiculeHandler endpoints de vehículos y entretenimientos.
type VehiculeHandler struct {
	uc  *usecase.VehiculeUseCase
	val *Validator
}

// NewVehiculeHandler construye el handler.
func NewVehiculeHandler(uc *usecase.VehiculeUseCase, val *Validator) *VehiculeHandler {
	return &VehiculeHandler{uc: uc, val: val}
}

// Create godoc
// @Summary      Crear vehículo
// @Tags         vehicules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehiculeRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.VehiculeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/vehicules [post]
func (h *VehiculeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehiculeRequest
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
// @Summary      Listar vehículos
// @Tags         vehicules
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Matrícula, marca o tipo"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.PageResponse[dto.VehiculeResponse]
// @Router       /admin/vehicules [get]
func (h *VehiculeHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := bindQuery(c, h.val, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de vehículo
// @Tags         vehicules
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del vehículo"
// @Success      200  {object}  dto.VehiculeDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/vehicules/{id} [get]
func (h *VehiculeHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vehículo (parcial)
// @Description  chauffeurActuelId: null desasigna; ausente no cambia.
// @Tags         vehicules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vehículo"
// @Param        body  body  dto.UpdateVehiculeRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.VehiculeResponse
// @Router       /admin/vehicules/{id} [patch]
func (h *VehiculeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateVehiculeRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadPhoto godoc
// @Summary      Subir foto del vehículo
// @Tags         vehicules
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "ID del vehículo"
// @Param        file  formData  file  true  "Imagen"
// @Success      200   {object}  dto.VehiculeResponse
// @Router       /admin/vehicules/{id}/upload-photo [patch]
func (h *VehiculeHandler) UploadPhoto(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	file, err := readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UploadPhoto(c.UserContext(), id, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddEntretien godoc
// @Summary      Registrar entretenimiento
// @Tags         vehicules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vehículo"
// @Param        body  body  dto.EntretienRequest  true  "Entretenimiento"
// @Success      201   {object}  dto.EntretienResponse
// @Router       /admin/vehicules/{id}/entretiens [post]
func (h *VehiculeHandler) AddEntretien(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.EntretienRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddEntretien(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEntretien godoc
// @Summary      Actualizar entretenimiento
// @Tags         vehicules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        entretienId  path  int  true  "ID del entretenimiento"
// @Param        body         body  dto.UpdateEntretienRequest  true  "Campos a cambiar"
// @Success      200          {object}  dto.EntretienResponse
// @Router       /admin/vehicules/entretiens/{entretienId} [patch]
func (h *VehiculeHandler) UpdateEntretien(c *fiber.Ctx) error {
	id, err := paramID(c, "entretienId")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateEntretienRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateEntretien(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteEntretien godoc
// @Summary      Eliminar entretenimiento
// @Tags         vehicules
// @Security     Bearer
// @Param        entretienId  path  int  true  "ID del entretenimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/vehicules/entretiens/{entretienId} [delete]
func (h *VehiculeHandler) DeleteEntretien(c *fiber.Ctx) error {
	id, err := paramID(c, "entretienId")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteEntretien(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MyVehicle godoc
// @Summary      Vehículo asignado al conductor autenticado
// @Tags         mobile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VehiculeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mobile/vehicules/my-vehicle [get]
func (h *VehiculeHandler) MyVehicle(c *fiber.Ctx) error {
	out, err := h.uc.MyVehicle(c.UserContext(), GetPrincipal(c).ChauffeurID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
