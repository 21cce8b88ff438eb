package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/access"
	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// UserUseCase aplica reglas de negocio para usuarios.
// El proveedor de identidad es la fuente de verdad de credenciales y ban;
// cada cambio se hace primero en remoto y después en local.
type UserUseCase struct {
	repo     repository.UserRepository
	identity ports.IdentityGateway
	log      zerolog.Logger
	now      func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el proveedor de identidad.
func NewUserUseCase(repo repository.UserRepository, identity ports.IdentityGateway, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, identity: identity, log: log, now: time.Now}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(u)
	return &out, nil
}

// List lista usuarios ordenados por nombre.
func (uc *UserUseCase) List(ctx context.Context, q dto.PageQuery) (dto.PageResponse[dto.UserResponse], error) {
	list, total, err := uc.repo.List(ctx, listParams(&q))
	if err != nil {
		return dto.PageResponse[dto.UserResponse]{}, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.NewUserResponse(u))
	}
	return dto.NewPage(items, total, q), nil
}

// CreateSousAdmin alta en dos fases con borrado compensatorio de la cuenta remota.
func (uc *UserUseCase) CreateSousAdmin(ctx context.Context, in dto.CreateSousAdminRequest) (*dto.UserResponse, error) {
	remote, err := uc.identity.CreateUser(ctx, ports.CreateIdentityInput{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
	})
	if err != nil {
		return nil, err
	}
	now := uc.now()
	u := &entity.Utilisateur{
		ID:        remote.ID,
		Email:     in.Email,
		FullName:  in.FullName,
		UserType:  entity.UserTypeSousAdmin,
		Status:    entity.StatusActif,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		compensateIdentity(ctx, uc.identity, uc.log, remote.ID, err)
		return nil, err
	}
	out := dto.NewUserResponse(u)
	return &out, nil
}

// UpdateFullName cambia el nombre en el proveedor (user_metadata) y en local.
func (uc *UserUseCase) UpdateFullName(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.identity.UpdateFullName(ctx, id, in.FullName); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateFullName(ctx, id, in.FullName); err != nil {
		return nil, err
	}
	u.FullName = in.FullName
	u.UpdatedAt = uc.now()
	out := dto.NewUserResponse(u)
	return &out, nil
}

// UpdateStatus banea o reactiva la cuenta remota y después copia el estado en local.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateUserStatusRequest) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	status := entity.Status(in.Status)
	if err := uc.identity.SetBanned(ctx, id, status == entity.StatusInactif); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	u.Status = status
	u.UpdatedAt = uc.now()
	out := dto.NewUserResponse(u)
	return &out, nil
}

// ChangePassword verifica la contraseña actual con un inicio de sesión y fija la nueva.
// Contraseña actual incorrecta: domain.ErrInvalidCredentials.
func (uc *UserUseCase) ChangePassword(ctx context.Context, p *access.Principal, in dto.UpdatePasswordRequest) error {
	if err := uc.identity.SignInWithPassword(ctx, p.Email, in.CurrentPassword); err != nil {
		return err
	}
	if err := uc.identity.UpdatePassword(ctx, p.UserID, in.NewPassword); err != nil {
		return fmt.Errorf("actualizar contraseña: %w", err)
	}
	return nil
}

func (uc *UserUseCase) find(ctx context.Context, id string) (*entity.Utilisateur, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("usuario %s: %w", id, domain.ErrUserNotFound)
	}
	return u, nil
}
