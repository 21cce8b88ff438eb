package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
)

func TestEnsureIdentity_CreaSiNoExiste(t *testing.T) {
	identity := apptest.NewIdentity()

	u, err := ensureIdentity(context.Background(), identity, "secreto-123")
	require.NoError(t, err)

	assert.Equal(t, adminEmail, u.Email)
	assert.Len(t, identity.Users, 1)
}

func TestEnsureIdentity_ReutilizaExistente(t *testing.T) {
	identity := apptest.NewIdentity()
	first, err := identity.CreateUser(context.Background(), ports.CreateIdentityInput{Email: "ADMIN@cargopilot.com", Password: "x", FullName: "Main Admin"})
	require.NoError(t, err)

	u, err := ensureIdentity(context.Background(), identity, "otra")
	require.NoError(t, err)

	assert.Equal(t, first.ID, u.ID)
	assert.Len(t, identity.Users, 1)
}

func TestAdminPassword(t *testing.T) {
	t.Setenv("SEED_ADMIN_PASSWORD", "")
	assert.Equal(t, defaultAdminPass, adminPassword())

	t.Setenv("SEED_ADMIN_PASSWORD", "desde-env")
	assert.Equal(t, "desde-env", adminPassword())
}
