package usecase

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

type chauffeurFixture struct {
	uc         *ChauffeurUseCase
	users      *apptest.UserRepo
	chauffeurs *apptest.ChauffeurRepo
	identity   *apptest.Identity
	blobs      *apptest.BlobStore
	mailer     *apptest.Mailer
}

func newChauffeurFixture() *chauffeurFixture {
	f := &chauffeurFixture{
		users:      apptest.NewUserRepo(),
		chauffeurs: apptest.NewChauffeurRepo(),
		identity:   apptest.NewIdentity(),
		blobs:      apptest.NewBlobStore(),
		mailer:     &apptest.Mailer{},
	}
	f.uc = NewChauffeurUseCase(ChauffeurDeps{
		Chauffeurs: f.chauffeurs,
		Users:      f.users,
		Missions:   apptest.NewMissionRepo(),
		Vehicules:  apptest.NewVehiculeRepo(),
		Incidents:  &apptest.IncidentRepo{},
		Tx:         &apptest.TxRunner{Users: f.users, Chauffeurs: f.chauffeurs},
		Identity:   f.identity,
		Blobs:      f.blobs,
		Mailer:     f.mailer,
		Log:        zerolog.Nop(),
	})
	f.uc.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return f
}

func chauffeurRequest() dto.CreateChauffeurRequest {
	return dto.CreateChauffeurRequest{
		Email:         "paul@cargopilot.com",
		Password:      "motdepasse1",
		FullName:      "Paul Durand",
		ChauffeurCode: "CH-001",
	}
}

// ─── Alta en dos fases ───────────────────────────────────────────────────────

func TestChauffeurCreate_OK(t *testing.T) {
	f := newChauffeurFixture()

	out, err := f.uc.Create(context.Background(), chauffeurRequest())
	require.NoError(t, err)

	assert.Equal(t, "Paul Durand", out.FullName)
	assert.Equal(t, "Actif", out.Status)
	require.Contains(t, f.users.Users, out.UtilisateurID)
	assert.Equal(t, entity.UserTypeChauffeur, f.users.Users[out.UtilisateurID].UserType)
	assert.False(t, f.identity.Banned[out.UtilisateurID])
	assert.Equal(t, []string{"paul@cargopilot.com"}, f.mailer.Sent)
}

func TestChauffeurCreate_SinAccesoMovilQuedaBaneado(t *testing.T) {
	f := newChauffeurFixture()
	in := chauffeurRequest()
	no := false
	in.ActiverAccesMobile = &no

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Inactif", out.Status)
	assert.True(t, f.identity.Banned[out.UtilisateurID])
	assert.Equal(t, entity.StatusInactif, f.users.Users[out.UtilisateurID].Status)
}

func TestChauffeurCreate_EmailDuplicado(t *testing.T) {
	f := newChauffeurFixture()
	_, err := f.uc.Create(context.Background(), chauffeurRequest())
	require.NoError(t, err)

	in := chauffeurRequest()
	in.ChauffeurCode = "CH-002"
	_, err = f.uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, f.users.Users, 1)
}

func TestChauffeurCreate_FalloLocalCompensa(t *testing.T) {
	f := newChauffeurFixture()
	f.chauffeurs.CreateErr = errors.New("db caída")

	_, err := f.uc.Create(context.Background(), chauffeurRequest())

	require.Error(t, err)
	assert.Empty(t, f.identity.Users, "la cuenta remota debe borrarse")
	assert.Len(t, f.identity.Deleted, 1)
	assert.Empty(t, f.mailer.Sent)
}

// Si el borrado compensatorio también falla la cuenta remota queda huérfana:
// se devuelve el error original y la cuenta sigue existiendo en el proveedor.
func TestChauffeurCreate_CompensacionFallidaDejaHuerfano(t *testing.T) {
	f := newChauffeurFixture()
	cause := errors.New("db caída")
	f.chauffeurs.CreateErr = cause
	f.identity.DeleteErr = errors.New("proveedor no disponible")

	_, err := f.uc.Create(context.Background(), chauffeurRequest())

	assert.ErrorIs(t, err, cause)
	assert.Len(t, f.identity.Users, 1)
	assert.Empty(t, f.identity.Deleted)
}

func TestChauffeurCreate_CorreoFallidoNoBloquea(t *testing.T) {
	f := newChauffeurFixture()
	f.mailer.Err = errors.New("smtp caído")

	out, err := f.uc.Create(context.Background(), chauffeurRequest())

	require.NoError(t, err)
	assert.NotZero(t, out.ID)
}

// ─── Documentos ──────────────────────────────────────────────────────────────

func TestUploadDocument_YURLFirmada(t *testing.T) {
	f := newChauffeurFixture()
	ch, err := f.uc.Create(context.Background(), chauffeurRequest())
	require.NoError(t, err)

	doc, err := f.uc.UploadDocument(context.Background(), ch.ID,
		dto.UploadDocumentRequest{DocumentType: "Permis", ExpirationDate: "2024-12-31"},
		ports.FileUpload{Name: "permis scan.pdf", ContentType: "application/pdf", Data: []byte("x")})
	require.NoError(t, err)

	assert.Equal(t, "2024-12-31", *doc.ExpirationDate)
	assert.Contains(t, doc.FilePath, "permis_scan.pdf")
	assert.Contains(t, f.blobs.Objects, ports.BucketDocumentsChauffeur+"/"+doc.FilePath)

	signed, err := f.uc.DocumentURL(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, signed.ExpiresIn)
	assert.Contains(t, signed.URL, "expires=60")
}

func TestUploadDocument_FechaInvalida(t *testing.T) {
	f := newChauffeurFixture()
	ch, err := f.uc.Create(context.Background(), chauffeurRequest())
	require.NoError(t, err)

	_, err = f.uc.UploadDocument(context.Background(), ch.ID,
		dto.UploadDocumentRequest{DocumentType: "Permis", ExpirationDate: "31/12/2024"},
		ports.FileUpload{Name: "p.pdf"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.blobs.Objects)
}

func TestDocumentURL_NoExiste(t *testing.T) {
	f := newChauffeurFixture()

	_, err := f.uc.DocumentURL(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Ficha y baja ────────────────────────────────────────────────────────────

func TestDetail_ListasVacias(t *testing.T) {
	f := newChauffeurFixture()
	ch, err := f.uc.Create(context.Background(), chauffeurRequest())
	require.NoError(t, err)

	d, err := f.uc.Detail(context.Background(), ch.ID)
	require.NoError(t, err)

	assert.NotNil(t, d.Documents)
	assert.NotNil(t, d.Formations)
	assert.NotNil(t, d.Incidents)
	assert.NotNil(t, d.Missions)
	assert.Nil(t, d.CurrentVehicle)
}

func TestDelete_BorraLocalYRemoto(t *testing.T) {
	f := newChauffeurFixture()
	ch, err := f.uc.Create(context.Background(), chauffeurRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), ch.ID))

	assert.Empty(t, f.chauffeurs.Chauffeurs)
	assert.Empty(t, f.users.Users)
	assert.Equal(t, []string{ch.UtilisateurID}, f.identity.Deleted)
}

func TestMe_SinPerfil(t *testing.T) {
	f := newChauffeurFixture()

	_, err := f.uc.Me(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObjectPath(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "client-3/1700000000000-logo_final.png", objectPath("client-3", now, "logo final.png"))
	assert.Equal(t, "client-3/1700000000000-x.png", objectPath("client-3", now, "../../x.png"))
	assert.Equal(t, "client-3/1700000000000-file", objectPath("client-3", now, ""))
}
