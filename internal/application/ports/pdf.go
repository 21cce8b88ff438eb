package ports

import "github.com/jhoicas/cargopilot-api/internal/domain/entity"

// MissionSheet datos de la hoja de misión.
type MissionSheet struct {
	Mission *entity.MissionDetail
	Client  *entity.Client
}

// MissionPDFGenerator genera la hoja de misión en PDF.
type MissionPDFGenerator interface {
	Generate(sheet MissionSheet) ([]byte, error)
}
