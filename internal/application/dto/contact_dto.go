package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateContactMessageRequest cuerpo de POST /contact (público).
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateMessageStatusRequest cuerpo de PATCH /admin/contact/:id/status.
type UpdateMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Nouveau Lu"`
}

// ContactMessageResponse representación JSON de un mensaje.
type ContactMessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactMessageResponse convierte la entidad en DTO.
func NewContactMessageResponse(m *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
