package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateSousAdminRequest cuerpo de POST /admin/users/sous-admin.
type CreateSousAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required"`
}

// UpdateUserRequest cuerpo de PATCH /admin/users/:id.
type UpdateUserRequest struct {
	FullName string `json:"fullName" validate:"required"`
}

// UpdateUserStatusRequest cuerpo de PATCH /admin/users/:id/status.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Actif Inactif"`
}

// UpdatePasswordRequest cuerpo de PATCH /admin/users/me/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}

// UserResponse representación JSON de una cuenta.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	UserType  string    `json:"userType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse convierte la entidad en DTO.
func NewUserResponse(u *entity.Utilisateur) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		UserType:  string(u.UserType),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PrincipalResponse cuenta autenticada tal como la ve la API (GET /auth/me).
type PrincipalResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	UserType    string `json:"userType"`
	ChauffeurID *int64 `json:"chauffeurId"`
}
