package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateMissionRequest cuerpo de POST /admin/missions.
type CreateMissionRequest struct {
	MissionCode              string           `json:"missionCode" validate:"required"`
	MissionType              string           `json:"missionType" validate:"required,oneof=Chargement Dechargement"`
	ChargementType           *string          `json:"chargementType" validate:"omitempty,oneof=Chargement_classique Chargement_frigorifique Chargement_plombe"`
	Status                   string           `json:"status" validate:"required,oneof=Programme En_cours Termine Annule"`
	ClientID                 int64            `json:"clientId" validate:"required,min=1"`
	DateDepart               *Date            `json:"dateDepart"`
	HeurePresenceObligatoire string           `json:"heurePresenceObligatoire" validate:"omitempty,hhmm"`
	HeureDepartEstimee       string           `json:"heureDepartEstimee" validate:"omitempty,hhmm"`
	DateArriveeEstimee       *Date            `json:"dateArriveeEstimee"`
	HeureArriveeEstimee      string           `json:"heureArriveeEstimee" validate:"omitempty,hhmm"`
	LieuDepart               string           `json:"lieuDepart"`
	LieuArrivee              string           `json:"lieuArrivee"`
	DistanceEstimeeKm        *decimal.Decimal `json:"distanceEstimeeKm"`
	ChauffeurDepartID        int64            `json:"chauffeurDepartId" validate:"required,min=1"`
	ChauffeurArriveeID       *int64           `json:"chauffeurArriveeId" validate:"omitempty,min=1"`
	VehiculeDepartID         int64            `json:"vehiculeDepartId" validate:"required,min=1"`
	VehiculeArriveeID        *int64           `json:"vehiculeArriveeId" validate:"omitempty,min=1"`
}

// MissionListQuery filtros de GET /admin/missions.
type MissionListQuery struct {
	PageQuery
	Status      string `query:"status" validate:"omitempty,oneof=Programme En_cours Termine Annule"`
	ClientID    int64  `query:"clientId" validate:"omitempty,min=1"`
	ChauffeurID int64  `query:"chauffeurId" validate:"omitempty,min=1"`
	DateFrom    string `query:"dateFrom"`
	DateTo      string `query:"dateTo"`
}

// UpdateMissionStatusRequest cuerpo de PATCH .../missions/:id/status.
type UpdateMissionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Programme En_cours Termine Annule"`
}

// MissionResponse representación JSON de una misión.
type MissionResponse struct {
	ID                       int64            `json:"id"`
	MissionCode              string           `json:"missionCode"`
	MissionType              string           `json:"missionType"`
	ChargementType           *string          `json:"chargementType"`
	Status                   string           `json:"status"`
	ClientID                 int64            `json:"clientId"`
	ClientName               string           `json:"clientName,omitempty"`
	ChauffeurDepartID        int64            `json:"chauffeurDepartId"`
	ChauffeurDepartName      string           `json:"chauffeurDepartName,omitempty"`
	ChauffeurArriveeID       *int64           `json:"chauffeurArriveeId"`
	ChauffeurArriveeName     string           `json:"chauffeurArriveeName,omitempty"`
	VehiculeDepartID         int64            `json:"vehiculeDepartId"`
	VehiculeDepartImmat      string           `json:"vehiculeDepartImmatriculation,omitempty"`
	VehiculeArriveeID        *int64           `json:"vehiculeArriveeId"`
	VehiculeArriveeImmat     string           `json:"vehiculeArriveeImmatriculation,omitempty"`
	DateDepart               *time.Time       `json:"dateDepart"`
	HeurePresenceObligatoire string           `json:"heurePresenceObligatoire,omitempty"`
	HeureDepartEstimee       string           `json:"heureDepartEstimee,omitempty"`
	DateArriveeEstimee       *time.Time       `json:"dateArriveeEstimee"`
	HeureArriveeEstimee      string           `json:"heureArriveeEstimee,omitempty"`
	DateArriveeReelle        *time.Time       `json:"dateArriveeReelle"`
	LieuDepart               string           `json:"lieuDepart,omitempty"`
	LieuArrivee              string           `json:"lieuArrivee,omitempty"`
	DistanceEstimeeKm        *decimal.Decimal `json:"distanceEstimeeKm"`
	DistanceReelleKm         *decimal.Decimal `json:"distanceReelleKm"`
	CarburantConsommeL       *decimal.Decimal `json:"carburantConsommeL"`
	CreatedAt                time.Time        `json:"createdAt"`
	UpdatedAt                time.Time        `json:"updatedAt"`
}

// NewMissionResponse convierte la entidad en DTO.
func NewMissionResponse(m *entity.Mission) MissionResponse {
	var ct *string
	if m.ChargementType != nil {
		s := string(*m.ChargementType)
		ct = &s
	}
	return MissionResponse{
		ID:                       m.ID,
		MissionCode:              m.MissionCode,
		MissionType:              string(m.MissionType),
		ChargementType:           ct,
		Status:                   string(m.Status),
		ClientID:                 m.ClientID,
		ChauffeurDepartID:        m.ChauffeurDepartID,
		ChauffeurArriveeID:       m.ChauffeurArriveeID,
		VehiculeDepartID:         m.VehiculeDepartID,
		VehiculeArriveeID:        m.VehiculeArriveeID,
		DateDepart:               m.DateDepart,
		HeurePresenceObligatoire: m.HeurePresenceObligatoire,
		HeureDepartEstimee:       m.HeureDepartEstimee,
		DateArriveeEstimee:       m.DateArriveeEstimee,
		HeureArriveeEstimee:      m.HeureArriveeEstimee,
		DateArriveeReelle:        m.DateArriveeReelle,
		LieuDepart:               m.LieuDepart,
		LieuArrivee:              m.LieuArrivee,
		DistanceEstimeeKm:        m.DistanceEstimeeKm,
		DistanceReelleKm:         m.DistanceReelleKm,
		CarburantConsommeL:       m.CarburantConsommeL,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

// NewMissionDetailResponse incluye los nombres de las relaciones.
func NewMissionDetailResponse(d *entity.MissionDetail) MissionResponse {
	r := NewMissionResponse(&d.Mission)
	r.ClientName = d.ClientName
	r.ChauffeurDepartName = d.ChauffeurDepartName
	r.ChauffeurArriveeName = d.ChauffeurArriveeName
	r.VehiculeDepartImmat = d.VehiculeDepartImmat
	r.VehiculeArriveeImmat = d.VehiculeArriveeImmat
	return r
}

// NewMissionDetailList convierte una lista de detalles.
func NewMissionDetailList(list []*entity.MissionDetail) []MissionResponse {
	out := make([]MissionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, NewMissionDetailResponse(d))
	}
	return out
}
