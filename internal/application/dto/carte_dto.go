package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateCarteRequest cuerpo de POST /admin/cartes.
type CreateCarteRequest struct {
	CardNumber     string `json:"cardNumber" validate:"required"`
	CardType       string `json:"cardType" validate:"required,oneof=gazole peage"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ExpirationDate *Date  `json:"expirationDate"`
	ChauffeurID    *int64 `json:"chauffeurId" validate:"omitempty,min=1"`
}

// UpdateCarteRequest cuerpo de PATCH /admin/cartes/:id.
// chauffeurId: null desasigna la tarjeta, ausente la deja como está.
type UpdateCarteRequest struct {
	CardNumber     *string       `json:"cardNumber" validate:"omitempty,min=1"`
	CardType       *string       `json:"cardType" validate:"omitempty,oneof=gazole peage"`
	Status         *string       `json:"status" validate:"omitempty,oneof=Active Inactive"`
	ExpirationDate *Date         `json:"expirationDate"`
	ChauffeurID    NullableInt64 `json:"chauffeurId"`
}

// CarteResponse representación JSON de una tarjeta.
type CarteResponse struct {
	ID             int64     `json:"id"`
	CardNumber     string    `json:"cardNumber"`
	CardType       string    `json:"cardType"`
	Status         string    `json:"status"`
	ExpirationDate *string   `json:"expirationDate"`
	ChauffeurID    *int64    `json:"chauffeurId"`
	ChauffeurName  string    `json:"chauffeurName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewCarteResponse convierte la entidad en DTO.
func NewCarteResponse(c *entity.Carte) CarteResponse {
	return CarteResponse{
		ID:             c.ID,
		CardNumber:     c.CardNumber,
		CardType:       string(c.CardType),
		Status:         string(c.Status),
		ExpirationDate: FormatDay(c.ExpirationDate),
		ChauffeurID:    c.ChauffeurID,
		ChauffeurName:  c.ChauffeurName,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
