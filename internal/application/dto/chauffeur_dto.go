package dto

import (
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CreateChauffeurRequest cuerpo de POST /admin/chauffeurs.
type CreateChauffeurRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8"`
	FullName           string `json:"fullName" validate:"required"`
	ChauffeurCode      string `json:"chauffeurCode" validate:"required"`
	BirthDate          *Date  `json:"birthDate"`
	LicenseNumber      string `json:"licenseNumber"`
	LicenseCategory    string `json:"licenseCategory"`
	ContractType       string `json:"contractType"`
	ActiverAccesMobile *bool  `json:"activerAccesMobile"`
}

// MobileAccess indica si la cuenta se crea activa (por defecto sí).
func (r CreateChauffeurRequest) MobileAccess() bool {
	return r.ActiverAccesMobile == nil || *r.ActiverAccesMobile
}

// CreateFormationRequest cuerpo de POST /admin/chauffeurs/:id/formations.
type CreateFormationRequest struct {
	FormationName string `json:"formationName" validate:"required"`
	Description   string `json:"description"`
	DateCompleted *Date  `json:"dateCompleted"`
}

// UploadDocumentRequest campos de formulario junto al archivo.
type UploadDocumentRequest struct {
	DocumentType   string `form:"documentType" validate:"required"`
	ExpirationDate string `form:"expirationDate"`
}

// ChauffeurResponse representación JSON de un conductor.
type ChauffeurResponse struct {
	ID                int64     `json:"id"`
	UtilisateurID     string    `json:"utilisateurId"`
	ChauffeurCode     string    `json:"chauffeurCode"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Status            string    `json:"status"`
	BirthDate         *string   `json:"birthDate"`
	LicenseNumber     string    `json:"licenseNumber,omitempty"`
	LicenseCategory   string    `json:"licenseCategory,omitempty"`
	ContractType      string    `json:"contractType,omitempty"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ChauffeurDetailResponse ficha completa del conductor.
type ChauffeurDetailResponse struct {
	ChauffeurResponse
	Documents      []DocumentResponse  `json:"documents"`
	Formations     []FormationResponse `json:"formations"`
	Incidents      []IncidentResponse  `json:"incidents"`
	Missions       []MissionResponse   `json:"missions"`
	CurrentVehicle *VehiculeResponse   `json:"currentVehicle"`
}

// DocumentResponse documento del conductor.
type DocumentResponse struct {
	ID             int64     `json:"id"`
	ChauffeurID    int64     `json:"chauffeurId"`
	DocumentType   string    `json:"documentType"`
	FilePath       string    `json:"filePath"`
	ExpirationDate *string   `json:"expirationDate"`
	UploadedAt     time.Time `json:"uploadedAt"`
}

// FormationResponse formación del conductor.
type FormationResponse struct {
	ID            int64     `json:"id"`
	ChauffeurID   int64     `json:"chauffeurId"`
	FormationName string    `json:"formationName"`
	Description   string    `json:"description,omitempty"`
	DateCompleted *string   `json:"dateCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SignedURLResponse URL temporal de lectura.
type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"` // segundos
}

// NewChauffeurResponse convierte la entidad en DTO.
func NewChauffeurResponse(c *entity.Chauffeur) ChauffeurResponse {
	return ChauffeurResponse{
		ID:                c.ID,
		UtilisateurID:     c.UtilisateurID,
		ChauffeurCode:     c.ChauffeurCode,
		FullName:          c.FullName,
		Email:             c.Email,
		Status:            string(c.Status),
		BirthDate:         FormatDay(c.BirthDate),
		LicenseNumber:     c.LicenseNumber,
		LicenseCategory:   c.LicenseCategory,
		ContractType:      c.ContractType,
		ProfilePictureURL: c.ProfilePictureURL,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// NewDocumentResponse convierte la entidad en DTO.
func NewDocumentResponse(d *entity.DocumentChauffeur) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID,
		ChauffeurID:    d.ChauffeurID,
		DocumentType:   d.DocumentType,
		FilePath:       d.FilePath,
		ExpirationDate: FormatDay(d.ExpirationDate),
		UploadedAt:     d.UploadedAt,
	}
}

// NewFormationResponse convierte la entidad en DTO.
func NewFormationResponse(f *entity.Formation) FormationResponse {
	return FormationResponse{
		ID:            f.ID,
		ChauffeurID:   f.ChauffeurID,
		FormationName: f.FormationName,
		Description:   f.Description,
		DateCompleted: FormatDay(f.DateCompleted),
		CreatedAt:     f.CreatedAt,
	}
}
