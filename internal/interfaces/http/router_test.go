package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/mission"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/application/usecase"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/observability"
	apphttp "github.com/jhoicas/cargopilot-api/internal/interfaces/http"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type routerEnv struct {
	*authEnv
	app      *fiber.App
	notifier *apptest.Notifier
	clients  *apptest.ClientRepo
	missions *apptest.MissionRepo
}

// newRouterEnv monta el router completo con los casos de uso que ejercitan los tests.
func newRouterEnv(t *testing.T, db apphttp.Pinger) *routerEnv {
	t.Helper()
	env := &routerEnv{
		authEnv:  newAuthEnv(t),
		notifier: &apptest.Notifier{},
		clients:  apptest.NewClientRepo(),
		missions: apptest.NewMissionRepo(),
	}
	ctx := context.Background()
	require.NoError(t, env.missions.Create(ctx, &entity.Mission{
		ID: 42, MissionCode: "M-042", MissionType: entity.MissionChargement,
		Status: entity.MissionEnCours, ClientID: 1, ChauffeurDepartID: 8, VehiculeDepartID: 3,
	}))
	require.NoError(t, env.missions.Create(ctx, &entity.Mission{
		ID: 43, MissionCode: "M-043", MissionType: entity.MissionChargement,
		Status: entity.MissionEnCours, ClientID: 1, ChauffeurDepartID: testChauffeurID, VehiculeDepartID: 3,
	}))

	missionUC := mission.NewUseCase(env.missions, env.clients, env.chauffeurs, apptest.NewVehiculeRepo(),
		env.notifier, &apptest.PDF{}, zerolog.Nop())

	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:    env.authUC,
		ClientUC:  usecase.NewClientUseCase(env.clients, apptest.NewBlobStore()),
		ContactUC: usecase.NewContactUseCase(apptest.NewContactRepo(), env.notifier),
		MissionUC: missionUC,
		Validator: apphttp.NewValidator(),
		Metrics:   observability.NewMetrics(),
		DB:        db,
		Log:       zerolog.Nop(),
		AppName:   "cargopilot-api",
	})
	return env
}

func (e *routerEnv) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ─── Contact (público) ───────────────────────────────────────────────────────

func TestContact_EnvioPublico(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/contact", "", map[string]string{
		"name": "Léa", "email": "lea@example.fr", "message": "Bonjour",
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Your message has been sent successfully.", decodeMap(t, resp)["message"])
	assert.Equal(t, 1, env.notifier.Count(ports.EventNewContactMessage))
}

func TestContact_ValidacionConDetalles(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/contact", "", map[string]string{"name": "Léa", "message": "Bonjour"})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Contains(t, errResp.Details, "email")
	assert.Zero(t, env.notifier.Count(ports.EventNewContactMessage))
}

func TestContact_CuerpoMalFormado(t *testing.T) {
	env := newRouterEnv(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ─── Clients (admin) ─────────────────────────────────────────────────────────

func TestClients_RequierenAdmin(t *testing.T) {
	env := newRouterEnv(t, nil)

	assert.Equal(t, fiber.StatusUnauthorized, env.do(t, http.MethodGet, "/admin/clients", "", nil).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, env.do(t, http.MethodGet, "/admin/clients", bearer(t, testDriverID), nil).StatusCode)
}

func TestClients_CrearObtenerYErrores(t *testing.T) {
	env := newRouterEnv(t, nil)
	admin := bearer(t, testAdminID)

	created := env.do(t, http.MethodPost, "/admin/clients", admin, map[string]string{"companyName": "Transports Martin"})
	require.Equal(t, fiber.StatusCreated, created.StatusCode)
	id := decodeMap(t, created)["id"]

	got := env.do(t, http.MethodGet, "/admin/clients/1", admin, nil)
	require.Equal(t, fiber.StatusOK, got.StatusCode)
	body := decodeMap(t, got)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "Transports Martin", body["companyName"])
	assert.Equal(t, "Actif", body["status"])

	missing := env.do(t, http.MethodGet, "/admin/clients/99", admin, nil)
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, missing).Code)

	badID := env.do(t, http.MethodGet, "/admin/clients/abc", admin, nil)
	assert.Equal(t, fiber.StatusBadRequest, badID.StatusCode)

	list := env.do(t, http.MethodGet, "/admin/clients?page=1&limit=10", admin, nil)
	require.Equal(t, fiber.StatusOK, list.StatusCode)
	assert.EqualValues(t, 1, decodeMap(t, list)["total"])
}

// ─── Missions (móvil) ────────────────────────────────────────────────────────

func TestMobileMissionStatus_MisionAjenaEs404(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodPatch, "/mobile/missions/42/status", bearer(t, testDriverID), map[string]string{"status": "Termine"})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Zero(t, env.notifier.Count(ports.EventMissionCompleted))
}

func TestMobileMissionStatus_TerminaYNotifica(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodPatch, "/mobile/missions/43/status", bearer(t, testDriverID), map[string]string{"status": "Termine"})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Termine", decodeMap(t, resp)["status"])
	assert.Equal(t, 1, env.notifier.Count(ports.EventMissionCompleted))
}

func TestMobileMissionStatus_EstadoInvalido(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodPatch, "/mobile/missions/43/status", bearer(t, testDriverID), map[string]string{"status": "Perdu"})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMobile_AdminNoAccede(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/mobile/missions/my-active", bearer(t, testAdminID), nil)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// ─── Auth / health / metrics / ws ────────────────────────────────────────────

func TestAuthMe(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/auth/me", bearer(t, testDriverID), nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, testDriverID, body["id"])
	assert.Equal(t, "Chauffeur", body["userType"])
	assert.EqualValues(t, testChauffeurID, body["chauffeurId"])
}

func TestHealth(t *testing.T) {
	ok := newRouterEnv(t, fakePinger{})
	down := newRouterEnv(t, fakePinger{err: errors.New("connection refused")})

	assert.Equal(t, fiber.StatusOK, ok.do(t, http.MethodGet, "/health", "", nil).StatusCode)
	assert.Equal(t, fiber.StatusServiceUnavailable, down.do(t, http.MethodGet, "/health", "", nil).StatusCode)
}

func TestMetrics_ExponeContadoresHTTP(t *testing.T) {
	env := newRouterEnv(t, nil)
	env.do(t, http.MethodGet, "/health", "", nil)

	resp := env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "cargopilot_http_requests_total")
}

func TestWS_SinUpgradeRechazado(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/ws?token=x", "", nil)

	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestUsers_IDNoUUIDEs400(t *testing.T) {
	env := newRouterEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/admin/users/abc", bearer(t, testAdminID), nil)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Details, "id")
}
