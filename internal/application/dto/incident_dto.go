package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateIncidentRequest cuerpo de POST /mobile/incidents y /admin/chauffeurs/:id/incidents.
type CreateIncidentRequest struct {
	IncidentType string `json:"incidentType" validate:"required"`
	Date         *Date  `json:"date" validate:"required"`
	Description  string `json:"description" validate:"required"`
	MissionID    *int64 `json:"missionId" validate:"omitempty,min=1"`
}

// IncidentResponse representación JSON de un incidente.
type IncidentResponse struct {
	ID           int64     `json:"id"`
	ChauffeurID  int64     `json:"chauffeurId"`
	MissionID    *int64    `json:"missionId"`
	IncidentType string    `json:"incidentType"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewIncidentResponse convierte la entidad en DTO.
func NewIncidentResponse(i *entity.Incident) IncidentResponse {
	return IncidentResponse{
		ID:           i.ID,
		ChauffeurID:  i.ChauffeurID,
		MissionID:    i.MissionID,
		IncidentType: i.IncidentType,
		Date:         i.Date,
		Description:  i.Description,
		CreatedAt:    i.CreatedAt,
	}
}
