package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Contact ─────────────────────────────────────────────────────────────────

func TestPreview(t *testing.T) {
	assert.Equal(t, "hola", Preview("hola"))
	assert.Equal(t, strings.Repeat("a", 50), Preview(strings.Repeat("a", 50)))
	assert.Equal(t, strings.Repeat("é", 50)+"...", Preview(strings.Repeat("é", 51)))
}

func TestContactSubmit_NotificaAdmins(t *testing.T) {
	repo := apptest.NewContactRepo()
	notifier := &apptest.Notifier{}
	uc := NewContactUseCase(repo, notifier)
	msg := strings.Repeat("x", 120)

	out, err := uc.Submit(context.Background(), dto.CreateContactMessageRequest{Name: "Léa", Email: "lea@x.fr", Message: msg})
	require.NoError(t, err)

	assert.Equal(t, "Nouveau", out.Status)
	assert.Equal(t, msg, repo.Messages[out.ID].Message)
	require.Len(t, notifier.Events, 1)
	ev := notifier.Events[0]
	assert.Equal(t, ports.RoomAdmins, ev.Room)
	assert.Equal(t, ports.EventNewContactMessage, ev.Event)
	payload := ev.Payload.(ports.NewContactMessagePayload)
	assert.Equal(t, strings.Repeat("x", 50)+"...", payload.Message)
	assert.Equal(t, out.ID, payload.ID)
}

func TestContactUpdateStatus_NoExiste(t *testing.T) {
	uc := NewContactUseCase(apptest.NewContactRepo(), &apptest.Notifier{})

	_, err := uc.UpdateStatus(context.Background(), 9, dto.UpdateMessageStatusRequest{Status: "Lu"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Incidents ───────────────────────────────────────────────────────────────

func newIncidentFixture(t *testing.T) (*IncidentUseCase, *apptest.Notifier, *apptest.MissionRepo) {
	t.Helper()
	chauffeurs := apptest.NewChauffeurRepo()
	missions := apptest.NewMissionRepo()
	notifier := &apptest.Notifier{}
	require.NoError(t, chauffeurs.Create(context.Background(), &entity.Chauffeur{ID: 5, ChauffeurCode: "CH-5", FullName: "Jean Petit"}))
	return NewIncidentUseCase(&apptest.IncidentRepo{}, chauffeurs, missions, notifier), notifier, missions
}

func TestIncidentReport_SinMisionUsaNA(t *testing.T) {
	uc, notifier, _ := newIncidentFixture(t)
	id := int64(5)

	_, err := uc.Report(context.Background(), &id, dto.CreateIncidentRequest{
		IncidentType: "Panne", Description: "Pneu crevé", Date: &dto.Date{Time: time.Now()},
	})
	require.NoError(t, err)

	require.Len(t, notifier.Events, 1)
	payload := notifier.Events[0].Payload.(ports.NewIncidentReportedPayload)
	assert.Equal(t, "N/A", payload.MissionCode)
	assert.Equal(t, "Jean Petit", payload.ChauffeurName)
}

func TestIncidentReport_ConMision(t *testing.T) {
	uc, notifier, missions := newIncidentFixture(t)
	require.NoError(t, missions.Create(context.Background(), &entity.Mission{ID: 11, MissionCode: "M-011", ChauffeurDepartID: 5}))
	id, missionID := int64(5), int64(11)

	_, err := uc.Report(context.Background(), &id, dto.CreateIncidentRequest{
		IncidentType: "Retard", Description: "Bouchons", MissionID: &missionID,
	})
	require.NoError(t, err)

	payload := notifier.Events[0].Payload.(ports.NewIncidentReportedPayload)
	assert.Equal(t, "M-011", payload.MissionCode)
}

func TestIncidentReport_SinPerfil(t *testing.T) {
	uc, notifier, _ := newIncidentFixture(t)

	_, err := uc.Report(context.Background(), nil, dto.CreateIncidentRequest{IncidentType: "Panne", Description: "x"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, notifier.Events)
}

// ─── Cartes ──────────────────────────────────────────────────────────────────

func TestCarteUpdate_NullDesasignaAusenteNoCambia(t *testing.T) {
	chauffeurs := apptest.NewChauffeurRepo()
	require.NoError(t, chauffeurs.Create(context.Background(), &entity.Chauffeur{ID: 2, ChauffeurCode: "CH-2", FullName: "Ana"}))
	uc := NewCarteUseCase(apptest.NewCarteRepo(), chauffeurs)
	chID := int64(2)

	c, err := uc.Create(context.Background(), dto.CreateCarteRequest{CardNumber: "4970-01", CardType: "gazole", ChauffeurID: &chID})
	require.NoError(t, err)
	assert.Equal(t, "Active", c.Status)

	var keep dto.UpdateCarteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Inactive"}`), &keep))
	out, err := uc.Update(context.Background(), c.ID, keep)
	require.NoError(t, err)
	assert.Equal(t, &chID, out.ChauffeurID)
	assert.Equal(t, "Inactive", out.Status)

	var unassign dto.UpdateCarteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"chauffeurId":null}`), &unassign))
	out, err = uc.Update(context.Background(), c.ID, unassign)
	require.NoError(t, err)
	assert.Nil(t, out.ChauffeurID)
	assert.Empty(t, out.ChauffeurName)
}

func TestCarteCreate_ConductorInexistente(t *testing.T) {
	uc := NewCarteUseCase(apptest.NewCarteRepo(), apptest.NewChauffeurRepo())
	id := int64(77)

	_, err := uc.Create(context.Background(), dto.CreateCarteRequest{CardNumber: "1", CardType: "peage", ChauffeurID: &id})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Clients y véhicules ─────────────────────────────────────────────────────

func TestClientUploadPicture(t *testing.T) {
	blobs := apptest.NewBlobStore()
	uc := NewClientUseCase(apptest.NewClientRepo(), blobs)
	c, err := uc.Create(context.Background(), dto.CreateClientRequest{CompanyName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Actif", c.Status)

	out, err := uc.UploadPicture(context.Background(), c.ID, ports.FileUpload{Name: "logo.png", Data: []byte{1}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.ProfilePictureURL, "https://blob.test/public/profile-pictures/client-1/"))
	assert.Len(t, blobs.Objects, 1)
}

func TestClientList_Paginacion(t *testing.T) {
	uc := NewClientUseCase(apptest.NewClientRepo(), apptest.NewBlobStore())
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := uc.Create(context.Background(), dto.CreateClientRequest{CompanyName: name, Email: strings.ToLower(name) + "@x.fr"})
		require.NoError(t, err)
	}

	page, err := uc.List(context.Background(), dto.PageQuery{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Gamma", page.Data[0].CompanyName)
}

func TestMyVehicle(t *testing.T) {
	vehicules := apptest.NewVehiculeRepo()
	uc := NewVehiculeUseCase(vehicules, apptest.NewChauffeurRepo(), apptest.NewBlobStore())
	chID := int64(4)
	require.NoError(t, vehicules.Create(context.Background(), &entity.Vehicule{Immatriculation: "AA-001-AA", ChauffeurActuelID: &chID}))

	v, err := uc.MyVehicle(context.Background(), &chID)
	require.NoError(t, err)
	assert.Equal(t, "AA-001-AA", v.Immatriculation)

	other := int64(9)
	_, err = uc.MyVehicle(context.Background(), &other)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehiculeEntretiens(t *testing.T) {
	uc := NewVehiculeUseCase(apptest.NewVehiculeRepo(), apptest.NewChauffeurRepo(), apptest.NewBlobStore())
	v, err := uc.Create(context.Background(), dto.CreateVehiculeRequest{Immatriculation: "BB-002-BB"})
	require.NoError(t, err)
	assert.Equal(t, "Bon_etat", v.EtatActuel)

	e, err := uc.AddEntretien(context.Background(), v.ID, dto.EntretienRequest{
		TypeEntretien: "Vidange",
		DateEntretien: &dto.Date{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", e.DateEntretien)

	detail, err := uc.Detail(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Entretiens, 1)

	require.NoError(t, uc.DeleteEntretien(context.Background(), e.ID))
	assert.ErrorIs(t, uc.DeleteEntretien(context.Background(), e.ID), domain.ErrNotFound)
}
