package repository

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// VehiculeRepository persistencia de vehículos y entretiens.
type VehiculeRepository interface {
	Create(ctx context.Context, v *entity.Vehicule) error
	GetByID(ctx context.Context, id int64) (*entity.Vehicule, error)
	GetByChauffeur(ctx context.Context, chauffeurID int64) (*entity.Vehicule, error)
	List(ctx context.Context, p ListParams) ([]*entity.Vehicule, int, error)
	Update(ctx context.Context, v *entity.Vehicule) error
	UpdatePhoto(ctx context.Context, id int64, url string) error

	AddEntretien(ctx context.Context, e *entity.Entretien) error
	GetEntretien(ctx context.Context, id int64) (*entity.Entretien, error)
	UpdateEntretien(ctx context.Context, e *entity.Entretien) error
	DeleteEntretien(ctx context.Context, id int64) error
	ListEntretiens(ctx context.Context, vehiculeID int64) ([]*entity.Entretien, error)
}
