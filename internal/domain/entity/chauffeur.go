package entity

import "time"

// Chauffeur perfil de conductor, vinculado 1:1 con una cuenta Utilisateur.
type Chauffeur struct {
	ID                int64
	UtilisateurID     string
	ChauffeurCode     string
	BirthDate         *time.Time
	LicenseNumber     string
	LicenseCategory   string
	ContractType      string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Datos de la cuenta (join con utilisateurs)
	FullName string
	Email    string
	Status   Status
}

// DocumentChauffeur documento administrativo del conductor (licencia, visita médica...).
type DocumentChauffeur struct {
	ID             int64
	ChauffeurID    int64
	DocumentType   string
	FilePath       string
	ExpirationDate *time.Time
	UploadedAt     time.Time
}

// ExpiringDocument documento próximo a vencer con el nombre del conductor.
type ExpiringDocument struct {
	DocumentChauffeur
	ChauffeurName string
}

// Formation formación completada por un conductor.
type Formation struct {
	ID            int64
	ChauffeurID   int64
	FormationName string
	Description   string
	DateCompleted *time.Time
	CreatedAt     time.Time
}
