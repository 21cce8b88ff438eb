package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateClientRequest cuerpo de POST /admin/clients.
type CreateClientRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	ContactName string `json:"contactName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Status      string `json:"status"`
}

// UpdateClientRequest cuerpo de PATCH /admin/clients/:id (campos opcionales).
type UpdateClientRequest struct {
	CompanyName *string `json:"companyName" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	ContactName *string `json:"contactName"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Status      *string `json:"status"`
}

// ClientResponse representación JSON de un cliente.
type ClientResponse struct {
	ID                int64     `json:"id"`
	CompanyName       string    `json:"companyName"`
	Email             string    `json:"email"`
	ContactName       string    `json:"contactName"`
	PhoneNumber       string    `json:"phoneNumber"`
	Address           string    `json:"address"`
	Status            string    `json:"status"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewClientResponse convierte la entidad en DTO.
func NewClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:                c.ID,
		CompanyName:       c.CompanyName,
		Email:             c.Email,
		ContactName:       c.ContactName,
		PhoneNumber:       c.PhoneNumber,
		Address:           c.Address,
		Status:            c.Status,
		ProfilePictureURL: c.ProfilePictureURL,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
