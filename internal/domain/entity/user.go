package entity

import "time"

// UserType rol de la cuenta.
type UserType string

const (
	UserTypeSousAdmin UserType = "SousAdmin"
	UserTypeChauffeur UserType = "Chauffeur"
)

// Status estado de la cuenta (copia local del ban del proveedor de identidad).
type Status string

const (
	StatusActif   Status = "Actif"
	StatusInactif Status = "Inactif"
)

// Utilisateur cuenta de acceso. El ID es el UUID del proveedor de identidad.
type Utilisateur struct {
	ID        string
	Email     string
	FullName  string
	UserType  UserType
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si la cuenta puede autenticarse.
func (u *Utilisateur) IsActive() bool {
	return u != nil && u.Status == StatusActif
}
