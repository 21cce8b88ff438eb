package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

const noMissionCode = "N/A"

// IncidentUseCase incidentes declarados desde la app móvil.
type IncidentUseCase struct {
	repo       repository.IncidentRepository
	chauffeurs repository.ChauffeurRepository
	missions   repository.MissionRepository
	notifier   ports.Notifier
	now        func() time.Time
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(
	repo repository.IncidentRepository,
	chauffeurs repository.ChauffeurRepository,
	missions repository.MissionRepository,
	notifier ports.Notifier,
) *IncidentUseCase {
	return &IncidentUseCase{repo: repo, chauffeurs: chauffeurs, missions: missions, notifier: notifier, now: time.Now}
}

// Report guarda el incidente del conductor autenticado y avisa a los administradores.
func (uc *IncidentUseCase) Report(ctx context.Context, chauffeurID *int64, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	if chauffeurID == nil {
		return nil, fmt.Errorf("perfil de conductor: %w", domain.ErrForbidden)
	}
	ch, err := uc.chauffeurs.GetByID(ctx, *chauffeurID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, fmt.Errorf("conductor %d: %w", *chauffeurID, domain.ErrNotFound)
	}
	missionCode := noMissionCode
	if in.MissionID != nil {
		m, err := uc.missions.GetByID(ctx, *in.MissionID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: misión %d no existe", domain.ErrInvalidInput, *in.MissionID)
		}
		missionCode = m.MissionCode
	}

	i := &entity.Incident{
		ChauffeurID:  ch.ID,
		MissionID:    in.MissionID,
		IncidentType: in.IncidentType,
		Description:  in.Description,
		CreatedAt:    uc.now(),
	}
	if d := in.Date.Ptr(); d != nil {
		i.Date = *d
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	uc.notifier.SendToRoom(ports.RoomAdmins, ports.EventNewIncidentReported, ports.NewIncidentReportedPayload{
		IncidentID:    i.ID,
		IncidentType:  i.IncidentType,
		Description:   i.Description,
		ChauffeurName: ch.FullName,
		MissionCode:   missionCode,
	})
	out := dto.NewIncidentResponse(i)
	return &out, nil
}
