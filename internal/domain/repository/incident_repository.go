package repository

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// IncidentRepository persistencia de incidentes.
type IncidentRepository interface {
	Create(ctx context.Context, i *entity.Incident) error
	ListByChauffeur(ctx context.Context, chauffeurID int64) ([]*entity.Incident, error)
}
