// Package auth resuelve el principal de cada petición a partir del access token de Supabase.
package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/cargopilot-api/internal/application/access"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/jhoicas/cargopilot-api/pkg/jwt"
)

// AuthUseCase verifica tokens y carga la cuenta local asociada.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	chauffeurRepo repository.ChauffeurRepository
	jwtSecret     string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, chauffeurRepo repository.ChauffeurRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, chauffeurRepo: chauffeurRepo, jwtSecret: jwtSecret}
}

// VerifyToken valida firma y expiración y devuelve el id de usuario (subject).
func (uc *AuthUseCase) VerifyToken(token string) (string, error) {
	claims, err := jwt.Parse(uc.jwtSecret, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return claims.Subject, nil
}

// Authenticate verifica el token y construye el principal.
// Cuenta inexistente → ErrUnauthorized; cuenta Inactif → ErrInactiveUser.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*access.Principal, error) {
	userID, err := uc.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return uc.ResolvePrincipal(ctx, userID)
}

// ResolvePrincipal carga la cuenta y, si es conductor, su perfil.
func (uc *AuthUseCase) ResolvePrincipal(ctx context.Context, userID string) (*access.Principal, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cargar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, domain.ErrInactiveUser
	}
	p := &access.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		UserType: user.UserType,
		Status:   user.Status,
	}
	if user.UserType == entity.UserTypeChauffeur {
		ch, err := uc.chauffeurRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("cargar conductor: %w", err)
		}
		if ch != nil {
			id := ch.ID
			p.ChauffeurID = &id
		}
	}
	return p, nil
}

// LookupUser devuelve la cuenta local o nil si no existe (handshake del WebSocket).
func (uc *AuthUseCase) LookupUser(ctx context.Context, userID string) (*entity.Utilisateur, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
