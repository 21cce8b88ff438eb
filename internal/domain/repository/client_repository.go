package repository

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context, p ListParams) ([]*entity.Client, int, error)
	Update(ctx context.Context, c *entity.Client) error
	UpdateProfilePicture(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
}
