package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
)

// ChauffeurHandler endpoints de conductores (/admin/chauffeurs y /mobile/chauffeurs).
type ChauffeurHandler struct {
	uc  *usecase.ChauffeurUseCase
	val *Validator
}

// NewChauffeurHandler construye el handler.
func NewChauffeurHandler(uc *usecase.ChauffeurUseCase, val *Validator) *ChauffeurHandler {
	return &ChauffeurHandler{uc: uc, val: val}
}

// Create godoc
// @Summary      Crear conductor
// @Description  Crea la cuenta en el proveedor de identidad y luego el usuario y el perfil locales.
// @Tags         chauffeurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChauffeurRequest  true  "Datos del conductor"
// @Success      201   {object}  dto.ChauffeurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /admin/chauffeurs [post]
func (h *ChauffeurHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChauffeurRequest
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
// @Summary      Listar conductores
// @Tags         chauffeurs
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Código, nombre o email"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.PageResponse[dto.ChauffeurResponse]
// @Router       /admin/chauffeurs [get]
func (h *ChauffeurHandler) List(c *fiber.Ctx) error {
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
// @Summary      Detalle de conductor
// @Description  Incluye documentos, formaciones, incidentes, misiones recientes y vehículo actual.
// @Tags         chauffeurs
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del conductor"
// @Success      200  {object}  dto.ChauffeurDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/chauffeurs/{id} [get]
func (h *ChauffeurHandler) Detail(c *fiber.Ctx) error {
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

// Delete godoc
// @Summary      Eliminar conductor
// @Tags         chauffeurs
// @Security     Bearer
// @Param        id   path  int  true  "ID del conductor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/chauffeurs/{id} [delete]
func (h *ChauffeurHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddFormation godoc
// @Summary      Registrar formación
// @Tags         chauffeurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del conductor"
// @Param        body  body  dto.CreateFormationRequest  true  "Formación"
// @Success      201   {object}  dto.FormationResponse
// @Router       /admin/chauffeurs/{id}/formations [post]
func (h *ChauffeurHandler) AddFormation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateFormationRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddFormation(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddIncident godoc
// @Summary      Registrar incidente de un conductor
// @Tags         chauffeurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del conductor"
// @Param        body  body  dto.CreateIncidentRequest  true  "Incidente"
// @Success      201   {object}  dto.IncidentResponse
// @Router       /admin/chauffeurs/{id}/incidents [post]
func (h *ChauffeurHandler) AddIncident(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateIncidentRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddIncident(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UploadDocument godoc
// @Summary      Subir documento del conductor
// @Tags         chauffeurs
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id              path      int     true   "ID del conductor"
// @Param        file            formData  file    true   "Documento"
// @Param        documentType    formData  string  true   "Tipo de documento"
// @Param        expirationDate  formData  string  false  "Vencimiento (YYYY-MM-DD)"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/chauffeurs/{id}/upload-document [patch]
func (h *ChauffeurHandler) UploadDocument(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UploadDocumentRequest
	if err := bindJSON(c, h.val, &in); err != nil {
		return writeError(c, err)
	}
	file, err := readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UploadDocument(c.UserContext(), id, in, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadPicture godoc
// @Summary      Subir foto de perfil del conductor
// @Tags         chauffeurs
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "ID del conductor"
// @Param        file  formData  file  true  "Imagen"
// @Success      200   {object}  dto.ChauffeurResponse
// @Router       /admin/chauffeurs/{id}/upload-picture [patch]
func (h *ChauffeurHandler) UploadPicture(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	file, err := readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UploadPicture(c.UserContext(), id, file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ViewDocument godoc
// @Summary      URL firmada de un documento
// @Description  La URL expira a los 60 segundos.
// @Tags         chauffeurs
// @Security     Bearer
// @Produce      json
// @Param        docId  path  int  true  "ID del documento"
// @Success      200    {object}  dto.SignedURLResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /admin/chauffeurs/document/{docId}/view [get]
func (h *ChauffeurHandler) ViewDocument(c *fiber.Ctx) error {
	docID, err := paramID(c, "docId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.DocumentURL(c.UserContext(), docID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del conductor autenticado
// @Tags         mobile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChauffeurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mobile/chauffeurs/me [get]
func (h *ChauffeurHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetPrincipal(c).ChauffeurID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
