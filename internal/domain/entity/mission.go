package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MissionStatus estado de la misión.
type MissionStatus string

const (
	MissionProgramme MissionStatus = "Programme"
	MissionEnCours   MissionStatus = "En_cours"
	MissionTermine   MissionStatus = "Termine"
	MissionAnnule    MissionStatus = "Annule"
)

// Valid indica si el estado pertenece al conjunto conocido.
func (s MissionStatus) Valid() bool {
	switch s {
	case MissionProgramme, MissionEnCours, MissionTermine, MissionAnnule:
		return true
	}
	return false
}

// MissionType tipo de operación.
type MissionType string

const (
	MissionChargement   MissionType = "Chargement"
	MissionDechargement MissionType = "Dechargement"
)

// ChargementType modalidad de carga.
type ChargementType string

const (
	ChargementClassique    ChargementType = "Chargement_classique"
	ChargementFrigorifique ChargementType = "Chargement_frigorifique"
	ChargementPlombe       ChargementType = "Chargement_plombe"
)

// Mission trabajo de transporte.
type Mission struct {
	ID                       int64
	MissionCode              string
	MissionType              MissionType
	ChargementType           *ChargementType
	Status                   MissionStatus
	ClientID                 int64
	ChauffeurDepartID        int64
	ChauffeurArriveeID       *int64
	VehiculeDepartID         int64
	VehiculeArriveeID        *int64
	DateDepart               *time.Time
	HeurePresenceObligatoire string
	HeureDepartEstimee       string
	DateArriveeEstimee       *time.Time
	HeureArriveeEstimee      string
	DateArriveeReelle        *time.Time
	LieuDepart               string
	LieuArrivee              string
	DistanceEstimeeKm        *decimal.Decimal
	DistanceReelleKm         *decimal.Decimal
	CarburantConsommeL       *decimal.Decimal
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// MissionDetail misión con los nombres de sus relaciones (lecturas).
type MissionDetail struct {
	Mission
	ClientName           string
	ChauffeurDepartName  string
	ChauffeurArriveeName string
	VehiculeDepartImmat  string
	VehiculeArriveeImmat string
}

// ApplyStatus aplica un nuevo estado con la regla de sello de llegada:
// Termine fija DateArriveeReelle a now, cualquier otro estado la limpia.
// Devuelve false si el estado no cambia (no-op, sin tocar la misión).
func (m *Mission) ApplyStatus(status MissionStatus, now time.Time) bool {
	if m.Status == status {
		return false
	}
	m.Status = status
	if status == MissionTermine {
		t := now
		m.DateArriveeReelle = &t
	} else {
		m.DateArriveeReelle = nil
	}
	m.UpdatedAt = now
	return true
}
