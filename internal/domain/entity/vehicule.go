package entity

import "time"

// EtatVehicule estado operativo del vehículo.
type EtatVehicule string

const (
	EtatBonEtat       EtatVehicule = "Bon_etat"
	EtatEnMaintenance EtatVehicule = "En_maintenance"
	EtatHorsService   EtatVehicule = "Hors_service"
)

// Vehicule vehículo de la flota.
type Vehicule struct {
	ID                      int64
	Immatriculation         string
	Marque                  string
	TypeVehicule            string
	AnneeFabrication        *int
	KilometrageActuel       *int
	NombrePlaces            *int
	DateMiseCirculation     *time.Time
	EtatActuel              EtatVehicule
	ChauffeurActuelID       *int64
	DateAffectationActuelle *time.Time
	UtilisationPrevue       string
	Remarques               string
	PhotoURL                string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Entretien registro de mantenimiento de un vehículo.
type Entretien struct {
	ID                    int64
	VehiculeID            int64
	TypeEntretien         string
	DateEntretien         time.Time
	DateProchainEntretien *time.Time
	Notes                 string
	CreatedAt             time.Time
}
