package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo incidentes sobre PostgreSQL.
type IncidentRepo struct {
	q Querier
}

// NewIncidentRepository construye el adaptador.
func NewIncidentRepository(q Querier) *IncidentRepo {
	return &IncidentRepo{q: q}
}

// Create persiste un incidente.
func (r *IncidentRepo) Create(ctx context.Context, i *entity.Incident) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO incidents (chauffeur_id, mission_id, incident_type, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, i.ChauffeurID, i.MissionID, i.IncidentType, i.Date, i.Description, i.CreatedAt).Scan(&i.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: conductor o misión inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// ListByChauffeur incidentes del conductor, los más recientes primero.
func (r *IncidentRepo) ListByChauffeur(ctx context.Context, chauffeurID int64) ([]*entity.Incident, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, chauffeur_id, mission_id, incident_type, date, description, created_at
		FROM incidents WHERE chauffeur_id = $1 ORDER BY date DESC, id DESC`, chauffeurID)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.Incident, error) {
		var i entity.Incident
		err := row.Scan(&i.ID, &i.ChauffeurID, &i.MissionID, &i.IncidentType, &i.Date, &i.Description, &i.CreatedAt)
		return &i, err
	})
}
