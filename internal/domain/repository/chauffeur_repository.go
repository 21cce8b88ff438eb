package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// ChauffeurRepository persistencia de conductores, sus documentos y formaciones.
type ChauffeurRepository interface {
	Create(ctx context.Context, c *entity.Chauffeur) error
	GetByID(ctx context.Context, id int64) (*entity.Chauffeur, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Chauffeur, error)
	List(ctx context.Context, p ListParams) ([]*entity.Chauffeur, int, error)
	UpdateProfilePicture(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error

	AddDocument(ctx context.Context, d *entity.DocumentChauffeur) error
	GetDocument(ctx context.Context, id int64) (*entity.DocumentChauffeur, error)
	ListDocuments(ctx context.Context, chauffeurID int64) ([]*entity.DocumentChauffeur, error)
	// ListExpiringDocuments documentos con expiration_date en [from, to], ambos incluidos.
	ListExpiringDocuments(ctx context.Context, from, to time.Time) ([]*entity.ExpiringDocument, error)

	AddFormation(ctx context.Context, f *entity.Formation) error
	ListFormations(ctx context.Context, chauffeurID int64) ([]*entity.Formation, error)
}
