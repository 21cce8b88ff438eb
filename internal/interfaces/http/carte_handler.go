package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
)

// CarteHandler CRUD de tarjetas de combustible/peaje.
type CarteHandler struct {
	uc  *usecase.CarteUseCase
	val *Validator
}

// NewCarteHandler construye el handler.
func NewCarteHandler(uc *usecase.CarteUseCase, val *Validator) *CarteHandler {
	return &CarteHandler{uc: uc, val: val}
}

// Create godoc
// @Summary      Crear tarjeta
// @Tags         cartes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarteRequest  true  "Datos de la tarjeta"
// @Success      201   {object}  dto.CarteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/cartes [post]
func (h *CarteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarteRequest
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
// @Summary      Listar tarjetas
// @Tags         cartes
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Número o conductor"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.PageResponse[dto.CarteResponse]
// @Router       /admin/cartes [get]
func (h *CarteHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obtener tarjeta
// @Tags         cartes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tarjeta"
// @Success      200  {object}  dto.CarteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/cartes/{id} [get]
func (h *CarteHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarjeta (parcial)
// @Description  chauffeurId: null desasigna; ausente no cambia.
// @Tags         cartes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la tarjeta"
// @Param        body  body  dto.UpdateCarteRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CarteResponse
// @Router       /admin/cartes/{id} [patch]
func (h *CarteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateCarteRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarjeta
// @Tags         cartes
// @Security     Bearer
// @Param        id   path  int  true  "ID de la tarjeta"
// @Success      204
// @Router       /admin/cartes/{id} [delete]
func (h *CarteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
