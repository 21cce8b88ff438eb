package repository

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para Utilisateur.
// GetByID y GetByEmail devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, u *entity.Utilisateur) error
	Upsert(ctx context.Context, u *entity.Utilisateur) error
	GetByID(ctx context.Context, id string) (*entity.Utilisateur, error)
	GetByEmail(ctx context.Context, email string) (*entity.Utilisateur, error)
	List(ctx context.Context, p ListParams) ([]*entity.Utilisateur, int, error)
	UpdateFullName(ctx context.Context, id, fullName string) error
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
	Delete(ctx context.Context, id string) error
}
