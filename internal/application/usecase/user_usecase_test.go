package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/cargopilot-api/internal/application/access"
	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUseCase() (*UserUseCase, *apptest.UserRepo, *apptest.Identity) {
	repo := apptest.NewUserRepo()
	identity := apptest.NewIdentity()
	return NewUserUseCase(repo, identity, zerolog.Nop()), repo, identity
}

func TestCreateSousAdmin_OK(t *testing.T) {
	uc, repo, identity := newUserUseCase()

	out, err := uc.CreateSousAdmin(context.Background(), dto.CreateSousAdminRequest{
		Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire Ops",
	})
	require.NoError(t, err)

	assert.Equal(t, "SousAdmin", out.UserType)
	assert.Equal(t, "Actif", out.Status)
	assert.Contains(t, repo.Users, out.ID)
	assert.Contains(t, identity.Users, out.ID)
}

func TestCreateSousAdmin_FalloLocalBorraCuentaRemota(t *testing.T) {
	uc, repo, identity := newUserUseCase()
	repo.CreateErr = errors.New("insert falló")

	_, err := uc.CreateSousAdmin(context.Background(), dto.CreateSousAdminRequest{
		Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire Ops",
	})

	require.Error(t, err)
	assert.Empty(t, identity.Users)
	assert.Len(t, identity.Deleted, 1)
}

func TestCreateSousAdmin_EmailDuplicado(t *testing.T) {
	uc, _, _ := newUserUseCase()
	in := dto.CreateSousAdminRequest{Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire"}
	_, err := uc.CreateSousAdmin(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.CreateSousAdmin(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpdateStatus_BaneaRemotoYCopiaLocal(t *testing.T) {
	uc, repo, identity := newUserUseCase()
	u, err := uc.CreateSousAdmin(context.Background(), dto.CreateSousAdminRequest{
		Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire",
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), u.ID, dto.UpdateUserStatusRequest{Status: "Inactif"})
	require.NoError(t, err)

	assert.Equal(t, "Inactif", out.Status)
	assert.True(t, identity.Banned[u.ID])
	assert.Equal(t, entity.StatusInactif, repo.Users[u.ID].Status)

	_, err = uc.UpdateStatus(context.Background(), u.ID, dto.UpdateUserStatusRequest{Status: "Actif"})
	require.NoError(t, err)
	assert.False(t, identity.Banned[u.ID])
}

func TestUpdateStatus_FalloRemotoNoTocaLocal(t *testing.T) {
	uc, repo, identity := newUserUseCase()
	u, err := uc.CreateSousAdmin(context.Background(), dto.CreateSousAdminRequest{
		Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire",
	})
	require.NoError(t, err)
	identity.BanErr = domain.ErrUpstream

	_, err = uc.UpdateStatus(context.Background(), u.ID, dto.UpdateUserStatusRequest{Status: "Inactif"})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, entity.StatusActif, repo.Users[u.ID].Status)
}

func TestUpdateFullName_Sincroniza(t *testing.T) {
	uc, repo, identity := newUserUseCase()
	u, err := uc.CreateSousAdmin(context.Background(), dto.CreateSousAdminRequest{
		Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire",
	})
	require.NoError(t, err)

	_, err = uc.UpdateFullName(context.Background(), u.ID, dto.UpdateUserRequest{FullName: "Claire Martin"})
	require.NoError(t, err)

	assert.Equal(t, "Claire Martin", repo.Users[u.ID].FullName)
	assert.Equal(t, "Claire Martin", identity.Users[u.ID].FullName)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _, _ := newUserUseCase()

	_, err := uc.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	uc, _, identity := newUserUseCase()
	u, err := uc.CreateSousAdmin(context.Background(), dto.CreateSousAdminRequest{
		Email: "ops@cargopilot.com", Password: "motdepasse1", FullName: "Claire",
	})
	require.NoError(t, err)
	p := &access.Principal{UserID: u.ID, Email: u.Email}

	err = uc.ChangePassword(context.Background(), p, dto.UpdatePasswordRequest{CurrentPassword: "incorrecta", NewPassword: "nouveau-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "motdepasse1", identity.Passwords[u.Email])

	err = uc.ChangePassword(context.Background(), p, dto.UpdatePasswordRequest{CurrentPassword: "motdepasse1", NewPassword: "nouveau-pass"})
	require.NoError(t, err)
	assert.Equal(t, "nouveau-pass", identity.Passwords[u.Email])
}
