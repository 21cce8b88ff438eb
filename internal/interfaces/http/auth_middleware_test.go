package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargopilot-api/internal/application/access"
	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/auth"
	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	apphttp "github.com/jhoicas/cargopilot-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/cargopilot-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret   = "test-secret-key-for-unit-tests-0123456789"
	testAdminID     = "00000000-0000-0000-0000-000000000001"
	testDriverID    = "00000000-0000-0000-0000-000000000002"
	testInactiveID  = "00000000-0000-0000-0000-000000000003"
	testChauffeurID = int64(7)
)

type authEnv struct {
	users      *apptest.UserRepo
	chauffeurs *apptest.ChauffeurRepo
	authUC     *auth.AuthUseCase
}

// newAuthEnv cuentas de prueba: un SousAdmin, un Chauffeur con perfil 7 y una cuenta inactiva.
func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	users := apptest.NewUserRepo()
	chauffeurs := apptest.NewChauffeurRepo()
	users.Put(&entity.Utilisateur{ID: testAdminID, Email: "admin@cargopilot.com", FullName: "Admin", UserType: entity.UserTypeSousAdmin, Status: entity.StatusActif})
	users.Put(&entity.Utilisateur{ID: testDriverID, Email: "paul@cargopilot.com", FullName: "Paul Durand", UserType: entity.UserTypeChauffeur, Status: entity.StatusActif})
	users.Put(&entity.Utilisateur{ID: testInactiveID, Email: "old@cargopilot.com", FullName: "Old", UserType: entity.UserTypeSousAdmin, Status: entity.StatusInactif})
	require.NoError(t, chauffeurs.Create(context.Background(), &entity.Chauffeur{ID: testChauffeurID, UtilisateurID: testDriverID, ChauffeurCode: "CH-007", FullName: "Paul Durand"}))
	return &authEnv{users: users, chauffeurs: chauffeurs, authUC: auth.NewAuthUseCase(users, chauffeurs, testJWTSecret)}
}

// buildTestApp aplicación mínima: AuthMiddleware + Authorize + handler que devuelve el principal.
func buildTestApp(env *authEnv, pred access.Predicate) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	handler := func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{"userType": p.UserType, "chauffeurId": p.ChauffeurID})
	}
	app.Get("/protected", apphttp.AuthMiddleware(env.authUC), apphttp.Authorize(pred, ""), handler)
	app.Get("/users/:id", apphttp.AuthMiddleware(env.authUC), apphttp.Authorize(access.SelfOnly(), "id"), handler)
	return app
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, userID+"@test", time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	resp := doGet(t, app, "/protected", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	resp := doGet(t, app, "/protected", "Token abc")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)
	tok, err := pkgjwt.Generate("otro-secreto-con-longitud-suficiente-xx", testAdminID, "a@b.c", time.Hour)
	require.NoError(t, err)

	resp := doGet(t, app, "/protected", "Bearer "+tok)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestAuthMiddleware_CuentaLocalInexistente(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	resp := doGet(t, app, "/protected", bearer(t, "99999999-0000-0000-0000-000000000000"))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CuentaInactiva(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	resp := doGet(t, app, "/protected", bearer(t, testInactiveID))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INACTIVE_USER", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize / roles
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	resp := doGet(t, app, "/protected", bearer(t, testAdminID))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthorize_ChauffeurEnRutaAdmin(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	resp := doGet(t, app, "/protected", bearer(t, testDriverID))

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	errResp := decodeError(t, resp)
	assert.Equal(t, "FORBIDDEN", errResp.Code)
	assert.Contains(t, errResp.Message, "SousAdmin")
}

func TestAuthorize_ChauffeurCargaPerfil(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.DriverOnly)

	resp := doGet(t, app, "/protected", bearer(t, testDriverID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		UserType    string `json:"userType"`
		ChauffeurID *int64 `json:"chauffeurId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Chauffeur", body.UserType)
	require.NotNil(t, body.ChauffeurID)
	assert.Equal(t, testChauffeurID, *body.ChauffeurID)
}

func TestAuthorize_SelfOnly(t *testing.T) {
	app := buildTestApp(newAuthEnv(t), access.AdminOnly)

	own := doGet(t, app, "/users/"+testAdminID, bearer(t, testAdminID))
	other := doGet(t, app, "/users/"+testDriverID, bearer(t, testAdminID))

	assert.Equal(t, fiber.StatusOK, own.StatusCode)
	assert.Equal(t, fiber.StatusForbidden, other.StatusCode)
}
