package entity

import "time"

// Incident incidente declarado por o sobre un conductor.
type Incident struct {
	ID           int64
	ChauffeurID  int64
	MissionID    *int64
	IncidentType string
	Date         time.Time
	Description  string
	CreatedAt    time.Time
}
