package ports

import "context"

// IdentityUser cuenta en el proveedor de identidad.
type IdentityUser struct {
	ID       string
	Email    string
	FullName string
}

// CreateIdentityInput datos de alta de una cuenta remota.
type CreateIdentityInput struct {
	Email    string
	Password string
	FullName string
	Banned   bool // cuenta creada sin acceso (ban indefinido)
}

// IdentityGateway proveedor de identidad (Supabase Auth admin).
// Es el dueño de las credenciales y del estado de ban; Utilisateur.status es una copia local.
type IdentityGateway interface {
	CreateUser(ctx context.Context, in CreateIdentityInput) (*IdentityUser, error)
	ListUsers(ctx context.Context) ([]IdentityUser, error)
	UpdateFullName(ctx context.Context, id, fullName string) error
	SetBanned(ctx context.Context, id string, banned bool) error
	UpdatePassword(ctx context.Context, id, password string) error
	DeleteUser(ctx context.Context, id string) error
	// SignInWithPassword verifica credenciales; domain.ErrInvalidCredentials si no coinciden.
	SignInWithPassword(ctx context.Context, email, password string) error
}
