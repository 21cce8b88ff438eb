package repository

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// CarteRepository persistencia de tarjetas carburante/peaje.
type CarteRepository interface {
	Create(ctx context.Context, c *entity.Carte) error
	GetByID(ctx context.Context, id int64) (*entity.Carte, error)
	List(ctx context.Context, p ListParams) ([]*entity.Carte, int, error)
	Update(ctx context.Context, c *entity.Carte) error
	Delete(ctx context.Context, id int64) error
}
