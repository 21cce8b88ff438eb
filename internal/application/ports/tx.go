package ports

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

// AccountsTxRunner ejecuta fn en una transacción con los repositorios de cuentas atados a ella.
// Commit si fn devuelve nil, rollback en cualquier otro caso.
type AccountsTxRunner interface {
	RunAccounts(ctx context.Context, fn func(users repository.UserRepository, chauffeurs repository.ChauffeurRepository) error) error
}
