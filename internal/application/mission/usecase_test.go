package mission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc         *UseCase
	missions   *apptest.MissionRepo
	chauffeurs *apptest.ChauffeurRepo
	clients    *apptest.ClientRepo
	vehicules  *apptest.VehiculeRepo
	notifier   *apptest.Notifier
	pdf        *apptest.PDF
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		missions:   apptest.NewMissionRepo(),
		chauffeurs: apptest.NewChauffeurRepo(),
		clients:    apptest.NewClientRepo(),
		vehicules:  apptest.NewVehiculeRepo(),
		notifier:   &apptest.Notifier{},
		pdf:        &apptest.PDF{},
		now:        time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
	}
	f.uc = NewUseCase(f.missions, f.clients, f.chauffeurs, f.vehicules, f.notifier, f.pdf, zerolog.Nop())
	f.uc.now = func() time.Time { return f.now }

	ctx := context.Background()
	require.NoError(t, f.clients.Create(ctx, &entity.Client{ID: 1, CompanyName: "Transports Martin"}))
	require.NoError(t, f.chauffeurs.Create(ctx, &entity.Chauffeur{ID: 7, ChauffeurCode: "CH-007", FullName: "Paul Durand"}))
	require.NoError(t, f.chauffeurs.Create(ctx, &entity.Chauffeur{ID: 8, ChauffeurCode: "CH-008", FullName: "Marie Leroy"}))
	require.NoError(t, f.vehicules.Create(ctx, &entity.Vehicule{ID: 3, Immatriculation: "AB-123-CD"}))
	require.NoError(t, f.missions.Create(ctx, &entity.Mission{
		ID:                42,
		MissionCode:       "M-042",
		MissionType:       entity.MissionChargement,
		Status:            entity.MissionEnCours,
		ClientID:          1,
		ChauffeurDepartID: 7,
		VehiculeDepartID:  3,
	}))
	return f
}

// ─── Transición de estado ────────────────────────────────────────────────────

func TestUpdateStatus_TermineFijaLlegadaYNotificaUnaVez(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.UpdateStatusByChauffeur(context.Background(), 42, 7, entity.MissionTermine)
	require.NoError(t, err)

	assert.Equal(t, "Termine", out.Status)
	require.NotNil(t, out.DateArriveeReelle)
	assert.True(t, out.DateArriveeReelle.Equal(f.now))

	require.Len(t, f.notifier.Events, 1)
	ev := f.notifier.Events[0]
	assert.Equal(t, ports.RoomAdmins, ev.Room)
	assert.Equal(t, ports.EventMissionCompleted, ev.Event)
	assert.Equal(t, ports.MissionCompletedPayload{MissionID: 42, MissionCode: "M-042", ChauffeurName: "Paul Durand"}, ev.Payload)

	stored := f.missions.Missions[42]
	assert.Equal(t, entity.MissionTermine, stored.Status)
	require.NotNil(t, stored.DateArriveeReelle)
}

func TestUpdateStatus_Idempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.UpdateStatusByChauffeur(ctx, 42, 7, entity.MissionTermine)
	require.NoError(t, err)
	first := *f.missions.Missions[42].DateArriveeReelle

	f.now = f.now.Add(2 * time.Hour)
	out, err := f.uc.UpdateStatusByChauffeur(ctx, 42, 7, entity.MissionTermine)
	require.NoError(t, err)

	assert.Equal(t, 1, f.missions.StatusWrites)
	assert.Equal(t, 1, f.notifier.Count(ports.EventMissionCompleted))
	assert.True(t, out.DateArriveeReelle.Equal(first))
}

func TestUpdateStatus_MismoEstadoSinNotificacion(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 2; i++ {
		_, err := f.uc.UpdateStatusByAdmin(context.Background(), 42, entity.MissionEnCours)
		require.NoError(t, err)
	}

	assert.Zero(t, f.missions.StatusWrites)
	assert.Empty(t, f.notifier.Events)
}

func TestUpdateStatus_SalirDeTermineLimpiaLlegada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.UpdateStatusByAdmin(ctx, 42, entity.MissionTermine)
	require.NoError(t, err)

	out, err := f.uc.UpdateStatusByAdmin(ctx, 42, entity.MissionEnCours)
	require.NoError(t, err)

	assert.Nil(t, out.DateArriveeReelle)
	assert.Nil(t, f.missions.Missions[42].DateArriveeReelle)
	assert.Equal(t, 1, f.notifier.Count(ports.EventMissionCompleted))
}

func TestUpdateStatus_AnnuleNoNotifica(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.UpdateStatusByAdmin(context.Background(), 42, entity.MissionAnnule)
	require.NoError(t, err)

	assert.Equal(t, "Annule", out.Status)
	assert.Nil(t, out.DateArriveeReelle)
	assert.Empty(t, f.notifier.Events)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateStatusByAdmin(context.Background(), 42, entity.MissionStatus("Livre"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.missions.StatusWrites)
}

func TestUpdateStatusByChauffeur_AjenaYInexistenteMismoError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, errOther := f.uc.UpdateStatusByChauffeur(ctx, 42, 8, entity.MissionTermine)
	_, errMissing := f.uc.UpdateStatusByChauffeur(ctx, 999, 8, entity.MissionTermine)

	assert.ErrorIs(t, errOther, domain.ErrNotFound)
	assert.ErrorIs(t, errMissing, domain.ErrNotFound)
	assert.Equal(t, notFound(42).Error(), errOther.Error())
	assert.Equal(t, notFound(999).Error(), errMissing.Error())
	assert.Equal(t, entity.MissionEnCours, f.missions.Missions[42].Status)
	assert.Empty(t, f.notifier.Events)
}

func TestUpdateStatus_ConductorSinNombreUsaNA(t *testing.T) {
	f := newFixture(t)
	f.chauffeurs.Chauffeurs[7].FullName = ""

	_, err := f.uc.UpdateStatusByAdmin(context.Background(), 42, entity.MissionTermine)
	require.NoError(t, err)

	require.Len(t, f.notifier.Events, 1)
	payload := f.notifier.Events[0].Payload.(ports.MissionCompletedPayload)
	assert.Equal(t, "N/A", payload.ChauffeurName)
}

// ─── Alta y consultas ────────────────────────────────────────────────────────

func TestCreate_RelacionInexistente(t *testing.T) {
	f := newFixture(t)
	in := dto.CreateMissionRequest{
		MissionCode:       "M-100",
		MissionType:       "Chargement",
		Status:            "Programme",
		ClientID:          1,
		ChauffeurDepartID: 7,
		VehiculeDepartID:  99,
	}

	_, err := f.uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, f.missions.Missions, 1)
}

func TestCreate_OK(t *testing.T) {
	f := newFixture(t)
	arrivee := int64(8)
	in := dto.CreateMissionRequest{
		MissionCode:        "M-100",
		MissionType:        "Dechargement",
		Status:             "Programme",
		ClientID:           1,
		ChauffeurDepartID:  7,
		ChauffeurArriveeID: &arrivee,
		VehiculeDepartID:   3,
		HeureDepartEstimee: "08:30",
	}

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "Programme", out.Status)
	assert.Nil(t, out.DateArriveeReelle)
	assert.Equal(t, &arrivee, out.ChauffeurArriveeID)
}

// La llegada real solo se fija al transicionar a Termine, no al crear.
func TestCreate_TerminaSinFechaLlegada(t *testing.T) {
	f := newFixture(t)
	in := dto.CreateMissionRequest{
		MissionCode:       "M-101",
		MissionType:       "Chargement",
		Status:            "Termine",
		ClientID:          1,
		ChauffeurDepartID: 7,
		VehiculeDepartID:  3,
	}

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Termine", out.Status)
	assert.Nil(t, out.DateArriveeReelle)
	assert.Nil(t, f.missions.Missions[out.ID].DateArriveeReelle)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	f := newFixture(t)
	in := dto.CreateMissionRequest{
		MissionCode: "M-042", MissionType: "Chargement", Status: "Programme",
		ClientID: 1, ChauffeurDepartID: 7, VehiculeDepartID: 3,
	}

	_, err := f.uc.Create(context.Background(), in)

	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestActiveForChauffeur_SinPerfil(t *testing.T) {
	f := newFixture(t)

	list, err := f.uc.ActiveForChauffeur(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestActiveForChauffeur_FiltraEstados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.missions.Create(ctx, &entity.Mission{MissionCode: "M-043", Status: entity.MissionTermine, ChauffeurDepartID: 7}))
	id := int64(7)

	list, err := f.uc.ActiveForChauffeur(ctx, &id)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "M-042", list[0].MissionCode)
}

func TestGet_NoExiste(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FechaInvalida(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.List(context.Background(), dto.MissionListQuery{DateFrom: "10/05/2024"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_PaginaPorDefecto(t *testing.T) {
	f := newFixture(t)

	page, err := f.uc.List(context.Background(), dto.MissionListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 1, page.Total)
}

func TestGeneratePDF(t *testing.T) {
	f := newFixture(t)

	data, name, err := f.uc.GeneratePDF(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "mission-M-042.pdf", name)
	assert.Equal(t, "%PDF-1.4\n", string(data))
	assert.Equal(t, "Transports Martin", f.pdf.Last.Client.CompanyName)
}
