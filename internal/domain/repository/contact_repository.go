package repository

import (
	"context"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// ContactRepository persistencia de mensajes de contacto.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
	GetByID(ctx context.Context, id int64) (*entity.ContactMessage, error)
	List(ctx context.Context, p ListParams) ([]*entity.ContactMessage, int, error)
	UpdateStatus(ctx context.Context, id int64, status entity.MessageStatus) error
	Delete(ctx context.Context, id int64) error
}
