package repository

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// ListParams búsqueda libre y ventana de paginación (ya normalizadas por el caso de uso).
type ListParams struct {
	Search string
	Limit  int
	Offset int
}

// MissionFilter filtros del listado de misiones.
type MissionFilter struct {
	ListParams
	Status      *entity.MissionStatus
	ClientID    *int64
	ChauffeurID *int64 // conductor de salida o de llegada
	DateFrom    *time.Time
	DateTo      *time.Time
}
