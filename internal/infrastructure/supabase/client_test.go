package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.SupabaseConfig{
		URL:            srv.URL,
		AnonKey:        "anon",
		ServiceRoleKey: "service",
		Timeout:        5 * time.Second,
	}, nil, zerolog.Nop())
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
	return m
}

// ─── Auth admin ───────────────────────────────────────────────────────────────

func TestCreateUser_OK(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service", r.Header.Get("Authorization"))
		assert.Equal(t, "service", r.Header.Get("apikey"))
		got = decodeBody(t, r)
		_, _ = w.Write([]byte(`{"id":"u-1","email":"a@b.com","user_metadata":{"full_name":"Ana"}}`))
	})

	u, err := c.CreateUser(context.Background(), ports.CreateIdentityInput{
		Email: "a@b.com", Password: "secret123", FullName: "Ana", Banned: true,
	})

	require.NoError(t, err)
	assert.Equal(t, ports.IdentityUser{ID: "u-1", Email: "a@b.com", FullName: "Ana"}, *u)
	assert.Equal(t, true, got["email_confirm"])
	assert.Equal(t, banForever, got["ban_duration"])
	assert.Equal(t, "Ana", got["user_metadata"].(map[string]any)["full_name"])
}

func TestCreateUser_SinBanNoEnviaDuracion(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody(t, r)
		_, _ = w.Write([]byte(`{"id":"u-1","email":"a@b.com"}`))
	})

	_, err := c.CreateUser(context.Background(), ports.CreateIdentityInput{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.NotContains(t, got, "ban_duration")
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	cases := map[string]string{
		"error_code": `{"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`,
		"mensaje":    `{"code":422,"msg":"A user with this email address has already been registered"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(body))
			})

			_, err := c.CreateUser(context.Background(), ports.CreateIdentityInput{Email: "a@b.com", Password: "x"})

			assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		})
	}
}

func TestSetBanned_Payload(t *testing.T) {
	var bodies []map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/v1/admin/users/u-1", r.URL.Path)
		bodies = append(bodies, decodeBody(t, r))
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, c.SetBanned(context.Background(), "u-1", true))
	require.NoError(t, c.SetBanned(context.Background(), "u-1", false))

	assert.Equal(t, "876000h", bodies[0]["ban_duration"])
	assert.Equal(t, "none", bodies[1]["ban_duration"])
}

func TestDeleteUser_NoExiste(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"msg":"User not found"}`))
	})

	err := c.DeleteUser(context.Background(), "u-1")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsers_Paginado(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("per_page"))
		if r.URL.Query().Get("page") != "1" {
			_, _ = w.Write([]byte(`{"users":[]}`))
			return
		}
		users := make([]authUser, listPageSize)
		for i := range users {
			users[i] = authUser{ID: "u", Email: "x@y.z"}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"users": users})
	})

	out, err := c.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, out, listPageSize)
}

func TestSignInWithPassword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		body := decodeBody(t, r)
		if body["password"] != "correcta" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"t"}`))
	})

	assert.NoError(t, c.SignInWithPassword(context.Background(), "a@b.com", "correcta"))
	assert.ErrorIs(t, c.SignInWithPassword(context.Background(), "a@b.com", "mala"), domain.ErrInvalidCredentials)
}

// ─── Storage ──────────────────────────────────────────────────────────────────

func TestUpload_Cabeceras(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/profile-pictures/client-1/1700000000000-logo.png", r.URL.Path)
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte{1, 2, 3}, b)
		_, _ = w.Write([]byte(`{"Key":"profile-pictures/client-1/1700000000000-logo.png"}`))
	})

	err := c.Upload(context.Background(), ports.BucketProfilePictures, "client-1/1700000000000-logo.png", []byte{1, 2, 3}, "image/png")

	assert.NoError(t, err)
}

func TestPublicURL(t *testing.T) {
	c := NewClient(config.SupabaseConfig{URL: "https://demo.supabase.co/"}, nil, zerolog.Nop())

	assert.Equal(t,
		"https://demo.supabase.co/storage/v1/object/public/vehicules-photos/vehicule-3/1-a.jpg",
		c.PublicURL(ports.BucketVehiculesPhotos, "vehicule-3/1-a.jpg"))
}

func TestSignedURL(t *testing.T) {
	var base string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/sign/documents-chauffeurs/chauffeur-7/1-permis.pdf", r.URL.Path)
		assert.Equal(t, float64(60), decodeBody(t, r)["expiresIn"])
		_, _ = w.Write([]byte(`{"signedURL":"/object/sign/documents-chauffeurs/chauffeur-7/1-permis.pdf?token=abc"}`))
	})
	base = c.baseURL

	u, err := c.SignedURL(context.Background(), ports.BucketDocumentsChauffeur, "chauffeur-7/1-permis.pdf", time.Minute)

	require.NoError(t, err)
	assert.Equal(t, base+"/storage/v1/object/sign/documents-chauffeurs/chauffeur-7/1-permis.pdf?token=abc", u)
}

func TestSignedURL_ObjetoInexistente(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"not_found","message":"Object not found"}`))
	})

	_, err := c.SignedURL(context.Background(), ports.BucketDocumentsChauffeur, "x.pdf", time.Minute)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Circuit breaker ──────────────────────────────────────────────────────────

func TestClient_BreakerAbreCon5xx(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 5; i++ {
		err := c.DeleteUser(context.Background(), "u-1")
		assert.ErrorIs(t, err, domain.ErrUpstream)
	}
	err := c.DeleteUser(context.Background(), "u-1")

	assert.ErrorIs(t, err, domain.ErrUpstreamOpen)
	assert.Equal(t, int32(5), calls.Load())
}

func TestClient_4xxNoAbreBreaker(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	for i := 0; i < 10; i++ {
		err := c.SignInWithPassword(context.Background(), "a@b.com", "x")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}
}
