package ports

// Salas fijas del broadcaster.
const (
	RoomAdmins     = "admins"
	RoomChauffeurs = "chauffeurs"
)

// Eventos publicados.
const (
	EventNewContactMessage    = "new_contact_message"
	EventNewIncidentReported  = "new_incident_reported"
	EventMissionCompleted     = "mission_completed"
	EventDocumentExpiringSoon = "document_expiring_soon"
)

// Notifier publica un evento en una sala. Fire-and-forget: sin ack ni reintentos.
type Notifier interface {
	SendToRoom(room, event string, payload any)
}

// NewContactMessagePayload payload de new_contact_message.
type NewContactMessagePayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// NewIncidentReportedPayload payload de new_incident_reported.
type NewIncidentReportedPayload struct {
	IncidentID    int64  `json:"incidentId"`
	IncidentType  string `json:"incidentType"`
	Description   string `json:"description"`
	ChauffeurName string `json:"chauffeurName"`
	MissionCode   string `json:"missionCode"`
}

// MissionCompletedPayload payload de mission_completed.
type MissionCompletedPayload struct {
	MissionID     int64  `json:"missionId"`
	MissionCode   string `json:"missionCode"`
	ChauffeurName string `json:"chauffeurName"`
}

// DocumentExpiringSoonPayload payload de document_expiring_soon.
type DocumentExpiringSoonPayload struct {
	ChauffeurName  string `json:"chauffeurName"`
	DocumentType   string `json:"documentType"`
	ExpirationDate string `json:"expirationDate"` // YYYY-MM-DD
	DaysRemaining  int    `json:"daysRemaining"`
}
