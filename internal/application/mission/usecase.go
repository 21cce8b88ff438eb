// Package mission gestiona el ciclo de vida de las misiones: alta, consulta,
// transición de estado con notificación y hoja de misión en PDF.
package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

const unknownName = "N/A"

// UseCase casos de uso de misiones.
type UseCase struct {
	missions   repository.MissionRepository
	clients    repository.ClientRepository
	chauffeurs repository.ChauffeurRepository
	vehicules  repository.VehiculeRepository
	notifier   ports.Notifier
	pdf        ports.MissionPDFGenerator
	log        zerolog.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	missions repository.MissionRepository,
	clients repository.ClientRepository,
	chauffeurs repository.ChauffeurRepository,
	vehicules repository.VehiculeRepository,
	notifier ports.Notifier,
	pdf ports.MissionPDFGenerator,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		missions:   missions,
		clients:    clients,
		chauffeurs: chauffeurs,
		vehicules:  vehicules,
		notifier:   notifier,
		pdf:        pdf,
		log:        log,
		now:        time.Now,
	}
}

// Create da de alta una misión tras comprobar que cliente, conductores y vehículos existen.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateMissionRequest) (*dto.MissionResponse, error) {
	if err := uc.checkRelations(ctx, in); err != nil {
		return nil, err
	}
	now := uc.now()
	m := &entity.Mission{
		MissionCode:              in.MissionCode,
		MissionType:              entity.MissionType(in.MissionType),
		Status:                   entity.MissionStatus(in.Status),
		ClientID:                 in.ClientID,
		ChauffeurDepartID:        in.ChauffeurDepartID,
		ChauffeurArriveeID:       in.ChauffeurArriveeID,
		VehiculeDepartID:         in.VehiculeDepartID,
		VehiculeArriveeID:        in.VehiculeArriveeID,
		DateDepart:               in.DateDepart.Ptr(),
		HeurePresenceObligatoire: in.HeurePresenceObligatoire,
		HeureDepartEstimee:       in.HeureDepartEstimee,
		DateArriveeEstimee:       in.DateArriveeEstimee.Ptr(),
		HeureArriveeEstimee:      in.HeureArriveeEstimee,
		LieuDepart:               in.LieuDepart,
		LieuArrivee:              in.LieuArrivee,
		DistanceEstimeeKm:        in.DistanceEstimeeKm,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if in.ChargementType != nil {
		ct := entity.ChargementType(*in.ChargementType)
		m.ChargementType = &ct
	}
	if err := uc.missions.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.NewMissionResponse(m)
	return &out, nil
}

func (uc *UseCase) checkRelations(ctx context.Context, in dto.CreateMissionRequest) error {
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("%w: cliente %d no existe", domain.ErrInvalidInput, in.ClientID)
	}
	for _, id := range nonNil(&in.ChauffeurDepartID, in.ChauffeurArriveeID) {
		ch, err := uc.chauffeurs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ch == nil {
			return fmt.Errorf("%w: conductor %d no existe", domain.ErrInvalidInput, id)
		}
	}
	for _, id := range nonNil(&in.VehiculeDepartID, in.VehiculeArriveeID) {
		v, err := uc.vehicules.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return fmt.Errorf("%w: vehículo %d no existe", domain.ErrInvalidInput, id)
		}
	}
	return nil
}

func nonNil(ids ...*int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}

// List listado paginado con filtros, ordenado por fecha de creación descendente.
func (uc *UseCase) List(ctx context.Context, q dto.MissionListQuery) (dto.PageResponse[dto.MissionResponse], error) {
	q.Normalize()
	f := repository.MissionFilter{
		ListParams: repository.ListParams{Search: q.Search, Limit: q.Limit, Offset: q.Offset()},
	}
	if q.Status != "" {
		s := entity.MissionStatus(q.Status)
		f.Status = &s
	}
	if q.ClientID > 0 {
		f.ClientID = &q.ClientID
	}
	if q.ChauffeurID > 0 {
		f.ChauffeurID = &q.ChauffeurID
	}
	if q.DateFrom != "" {
		d, err := dto.ParseDate(q.DateFrom)
		if err != nil {
			return dto.PageResponse[dto.MissionResponse]{}, fmt.Errorf("%w: dateFrom", domain.ErrInvalidInput)
		}
		f.DateFrom = &d.Time
	}
	if q.DateTo != "" {
		d, err := dto.ParseDate(q.DateTo)
		if err != nil {
			return dto.PageResponse[dto.MissionResponse]{}, fmt.Errorf("%w: dateTo", domain.ErrInvalidInput)
		}
		f.DateTo = &d.Time
	}
	list, total, err := uc.missions.List(ctx, f)
	if err != nil {
		return dto.PageResponse[dto.MissionResponse]{}, err
	}
	return dto.NewPage(dto.NewMissionDetailList(list), total, q.PageQuery), nil
}

// Get devuelve una misión con sus relaciones.
func (uc *UseCase) Get(ctx context.Context, id int64) (*dto.MissionResponse, error) {
	d, err := uc.missions.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewMissionDetailResponse(d)
	return &out, nil
}

// ActiveForChauffeur misiones Programme/En_cours del conductor; lista vacía si no hay perfil.
func (uc *UseCase) ActiveForChauffeur(ctx context.Context, chauffeurID *int64) ([]dto.MissionResponse, error) {
	if chauffeurID == nil {
		return []dto.MissionResponse{}, nil
	}
	list, err := uc.missions.ListActiveByChauffeur(ctx, *chauffeurID)
	if err != nil {
		return nil, err
	}
	return dto.NewMissionDetailList(list), nil
}

// UpdateStatusByChauffeur transición iniciada por el conductor desde la app móvil.
//
// Solo el conductor de salida puede cambiar el estado. Si la misión no existe o es de
// otro conductor se devuelve exactamente el mismo error, para no revelar su existencia.
func (uc *UseCase) UpdateStatusByChauffeur(ctx context.Context, missionID, chauffeurID int64, status entity.MissionStatus) (*dto.MissionResponse, error) {
	m, err := uc.missions.GetByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.ChauffeurDepartID != chauffeurID {
		return nil, notFound(missionID)
	}
	return uc.transition(ctx, m, status)
}

// UpdateStatusByAdmin transición sin restricción de propietario.
func (uc *UseCase) UpdateStatusByAdmin(ctx context.Context, missionID int64, status entity.MissionStatus) (*dto.MissionResponse, error) {
	m, err := uc.missions.GetByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFound(missionID)
	}
	return uc.transition(ctx, m, status)
}

func notFound(missionID int64) error {
	return fmt.Errorf("misión %d: %w", missionID, domain.ErrNotFound)
}

// transition: no-op si el estado no cambia; si no, escritura y, solo para Termine,
// una única notificación mission_completed tras la escritura.
func (uc *UseCase) transition(ctx context.Context, m *entity.Mission, status entity.MissionStatus) (*dto.MissionResponse, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	if !m.ApplyStatus(status, uc.now()) {
		out := dto.NewMissionResponse(m)
		return &out, nil
	}
	if err := uc.missions.UpdateStatus(ctx, m.ID, m.Status, m.DateArriveeReelle, m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("actualizar estado de misión %d: %w", m.ID, err)
	}
	if m.Status == entity.MissionTermine {
		uc.notifier.SendToRoom(ports.RoomAdmins, ports.EventMissionCompleted, ports.MissionCompletedPayload{
			MissionID:     m.ID,
			MissionCode:   m.MissionCode,
			ChauffeurName: uc.chauffeurName(ctx, m.ChauffeurDepartID),
		})
	}
	out := dto.NewMissionResponse(m)
	return &out, nil
}

func (uc *UseCase) chauffeurName(ctx context.Context, chauffeurID int64) string {
	ch, err := uc.chauffeurs.GetByID(ctx, chauffeurID)
	if err != nil {
		uc.log.Warn().Err(err).Int64("chauffeur_id", chauffeurID).Msg("nombre del conductor para notificación")
		return unknownName
	}
	if ch == nil || ch.FullName == "" {
		return unknownName
	}
	return ch.FullName
}

// GeneratePDF genera la hoja de misión y el nombre de archivo sugerido.
func (uc *UseCase) GeneratePDF(ctx context.Context, missionID int64) ([]byte, string, error) {
	d, err := uc.missions.GetDetail(ctx, missionID)
	if err != nil {
		return nil, "", err
	}
	if d == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clients.GetByID(ctx, d.ClientID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdf.Generate(ports.MissionSheet{Mission: d, Client: client})
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de misión %d: %w", missionID, err)
	}
	return pdf, fmt.Sprintf("mission-%s.pdf", d.MissionCode), nil
}
