package entity

import "time"

// CardType tipo de tarjeta.
type CardType string

const (
	CardTypeGazole CardType = "gazole"
	CardTypePeage  CardType = "peage"
)

// CardStatus estado de la tarjeta.
type CardStatus string

const (
	CardStatusActive   CardStatus = "Active"
	CardStatusInactive CardStatus = "Inactive"
)

// Carte tarjeta de carburante o peaje, opcionalmente asignada a un conductor.
type Carte struct {
	ID             int64
	CardNumber     string
	CardType       CardType
	Status         CardStatus
	ExpirationDate *time.Time
	ChauffeurID    *int64
	ChauffeurName  string // join, vacío si no está asignada
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
