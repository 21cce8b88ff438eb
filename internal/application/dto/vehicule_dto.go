package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateVehiculeRequest cuerpo de POST /admin/vehicules.
type CreateVehiculeRequest struct {
	Immatriculation         string `json:"immatriculation" validate:"required"`
	Marque                  string `json:"marque"`
	TypeVehicule            string `json:"typeVehicule"`
	AnneeFabrication        *int   `json:"anneeFabrication" validate:"omitempty,min=1900,max=2100"`
	KilometrageActuel       *int   `json:"kilometrageActuel" validate:"omitempty,min=0"`
	NombrePlaces            *int   `json:"nombrePlaces" validate:"omitempty,min=1"`
	DateMiseCirculation     *Date  `json:"dateMiseCirculation"`
	EtatActuel              string `json:"etatActuel" validate:"omitempty,oneof=Bon_etat En_maintenance Hors_service"`
	ChauffeurActuelID       *int64 `json:"chauffeurActuelId" validate:"omitempty,min=1"`
	DateAffectationActuelle *Date  `json:"dateAffectationActuelle"`
	UtilisationPrevue       string `json:"utilisationPrevue"`
	Remarques               string `json:"remarques"`
}

// UpdateVehiculeRequest cuerpo de PATCH /admin/vehicules/:id (campos opcionales).
type UpdateVehiculeRequest struct {
	Immatriculation         *string       `json:"immatriculation" validate:"omitempty,min=1"`
	Marque                  *string       `json:"marque"`
	TypeVehicule            *string       `json:"typeVehicule"`
	AnneeFabrication        *int          `json:"anneeFabrication" validate:"omitempty,min=1900,max=2100"`
	KilometrageActuel       *int          `json:"kilometrageActuel" validate:"omitempty,min=0"`
	NombrePlaces            *int          `json:"nombrePlaces" validate:"omitempty,min=1"`
	DateMiseCirculation     *Date         `json:"dateMiseCirculation"`
	EtatActuel              *string       `json:"etatActuel" validate:"omitempty,oneof=Bon_etat En_maintenance Hors_service"`
	ChauffeurActuelID       NullableInt64 `json:"chauffeurActuelId"`
	DateAffectationActuelle *Date         `json:"dateAffectationActuelle"`
	UtilisationPrevue       *string       `json:"utilisationPrevue"`
	Remarques               *string       `json:"remarques"`
}

// EntretienRequest cuerpo de alta de un entretien.
type EntretienRequest struct {
	TypeEntretien         string `json:"typeEntretien" validate:"required"`
	DateEntretien         *Date  `json:"dateEntretien" validate:"required"`
	DateProchainEntretien *Date  `json:"dateProchainEntretien"`
	Notes                 string `json:"notes"`
}

// UpdateEntretienRequest cuerpo de PATCH /admin/vehicules/entretiens/:entretienId.
type UpdateEntretienRequest struct {
	TypeEntretien         *string `json:"typeEntretien" validate:"omitempty,min=1"`
	DateEntretien         *Date   `json:"dateEntretien"`
	DateProchainEntretien *Date   `json:"dateProchainEntretien"`
	Notes                 *string `json:"notes"`
}

// VehiculeResponse representación JSON de un vehículo.
type VehiculeResponse struct {
	ID                      int64     `json:"id"`
	Immatriculation         string    `json:"immatriculation"`
	Marque                  string    `json:"marque,omitempty"`
	TypeVehicule            string    `json:"typeVehicule,omitempty"`
	AnneeFabrication        *int      `json:"anneeFabrication"`
	KilometrageActuel       *int      `json:"kilometrageActuel"`
	NombrePlaces            *int      `json:"nombrePlaces"`
	DateMiseCirculation     *string   `json:"dateMiseCirculation"`
	EtatActuel              string    `json:"etatActuel"`
	ChauffeurActuelID       *int64    `json:"chauffeurActuelId"`
	DateAffectationActuelle *string   `json:"dateAffectationActuelle"`
	UtilisationPrevue       string    `json:"utilisationPrevue,omitempty"`
	Remarques               string    `json:"remarques,omitempty"`
	PhotoURL                string    `json:"photoUrl,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// VehiculeDetailResponse vehículo con historial de mantenimiento y conductor actual.
type VehiculeDetailResponse struct {
	VehiculeResponse
	Entretiens      []EntretienResponse `json:"entretiens"`
	ChauffeurActuel *ChauffeurResponse  `json:"chauffeurActuel"`
}

// EntretienResponse representación JSON de un entretien.
type EntretienResponse struct {
	ID                    int64     `json:"id"`
	VehiculeID            int64     `json:"vehiculeId"`
	TypeEntretien         string    `json:"typeEntretien"`
	DateEntretien         string    `json:"dateEntretien"`
	DateProchainEntretien *string   `json:"dateProchainEntretien"`
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// NewVehiculeResponse convierte la entidad en DTO.
func NewVehiculeResponse(v *entity.Vehicule) VehiculeResponse {
	return VehiculeResponse{
		ID:                      v.ID,
		Immatriculation:         v.Immatriculation,
		Marque:                  v.Marque,
		TypeVehicule:            v.TypeVehicule,
		AnneeFabrication:        v.AnneeFabrication,
		KilometrageActuel:       v.KilometrageActuel,
		NombrePlaces:            v.NombrePlaces,
		DateMiseCirculation:     FormatDay(v.DateMiseCirculation),
		EtatActuel:              string(v.EtatActuel),
		ChauffeurActuelID:       v.ChauffeurActuelID,
		DateAffectationActuelle: FormatDay(v.DateAffectationActuelle),
		UtilisationPrevue:       v.UtilisationPrevue,
		Remarques:               v.Remarques,
		PhotoURL:                v.PhotoURL,
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}
}

// NewEntretienResponse convierte la entidad en DTO.
func NewEntretienResponse(e *entity.Entretien) EntretienResponse {
	return EntretienResponse{
		ID:                    e.ID,
		VehiculeID:            e.VehiculeID,
		TypeEntretien:         e.TypeEntretien,
		DateEntretien:         e.DateEntretien.Format("2006-01-02"),
		DateProchainEntretien: FormatDay(e.DateProchainEntretien),
		Notes:                 e.Notes,
		CreatedAt:             e.CreatedAt,
	}
}
