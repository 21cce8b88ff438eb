package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// MissionRepository persistencia de misiones.
type MissionRepository interface {
	Create(ctx context.Context, m *entity.Mission) error
	GetByID(ctx context.Context, id int64) (*entity.Mission, error)
	GetDetail(ctx context.Context, id int64) (*entity.MissionDetail, error)
	List(ctx context.Context, f MissionFilter) ([]*entity.MissionDetail, int, error)
	// ListActiveByChauffeur misiones Programme/En_cours del conductor de salida, por fecha de salida.
	ListActiveByChauffeur(ctx context.Context, chauffeurID int64) ([]*entity.MissionDetail, error)
	ListRecentByChauffeur(ctx context.Context, chauffeurID int64, limit int) ([]*entity.MissionDetail, error)
	// UpdateStatus escribe estado y fecha de llegada real en una sola sentencia.
	UpdateStatus(ctx context.Context, id int64, status entity.MissionStatus, dateArriveeReelle *time.Time, updatedAt time.Time) error
}
