package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
)

const contactSentMessage = "Your message has been sent successfully."

// ContactHandler formulario público de contacto y bandeja de administración.
type ContactHandler struct {
	uc  *usecase.ContactUseCase
	val *Validator
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase, val *Validator) *ContactHandler {
	return &ContactHandler{uc: uc, val: val}
}

// Submit godoc
// @Summary      Enviar mensaje de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactMessageRequest  true  "Mensaje"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateContactMessageRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	if _, err := h.uc.Submit(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: contactSentMessage})
}

// List godoc
// @Summary      Listar mensajes de contacto
// @Tags         contact
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre, email o mensaje"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.PageResponse[dto.ContactMessageResponse]
// @Router       /admin/contact [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
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

// UpdateStatus godoc
// @Summary      Marcar mensaje como leído o nuevo
// @Tags         contact
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del mensaje"
// @Param        body  body  dto.UpdateMessageStatusRequest  true  "Nouveau | Lu"
// @Success      200   {object}  dto.ContactMessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/contact/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateMessageStatusRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar mensaje
// @Tags         contact
// @Security     Bearer
// @Param        id   path  int  true  "ID del mensaje"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/contact/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
