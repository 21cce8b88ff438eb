package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

const previewLength = 50

// ContactUseCase mensajes del formulario público.
type ContactUseCase struct {
	repo     repository.ContactRepository
	notifier ports.Notifier
	now      func() time.Time
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, notifier ports.Notifier) *ContactUseCase {
	return &ContactUseCase{repo: repo, notifier: notifier, now: time.Now}
}

// Submit guarda el mensaje como Nouveau y avisa a los administradores.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	m := &entity.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Status:    entity.MessageNouveau,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.notifier.SendToRoom(ports.RoomAdmins, ports.EventNewContactMessage, ports.NewContactMessagePayload{
		ID:        m.ID,
		Name:      m.Name,
		Message:   Preview(m.Message),
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	})
	out := dto.NewContactMessageResponse(m)
	return &out, nil
}

// Preview primeros 50 caracteres seguidos de "..." si el texto es más largo.
func Preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLength {
		return s
	}
	return string(r[:previewLength]) + "..."
}

// List lista mensajes, los más recientes primero.
func (uc *ContactUseCase) List(ctx context.Context, q dto.PageQuery) (dto.PageResponse[dto.ContactMessageResponse], error) {
	list, total, err := uc.repo.List(ctx, listParams(&q))
	if err != nil {
		return dto.PageResponse[dto.ContactMessageResponse]{}, err
	}
	items := make([]dto.ContactMessageResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.NewContactMessageResponse(m))
	}
	return dto.NewPage(items, total, q), nil
}

// UpdateStatus marca el mensaje como Nouveau o Lu.
func (uc *ContactUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateMessageStatusRequest) (*dto.ContactMessageResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("mensaje %d: %w", id, domain.ErrNotFound)
	}
	m.Status = entity.MessageStatus(in.Status)
	if err := uc.repo.UpdateStatus(ctx, id, m.Status); err != nil {
		return nil, err
	}
	out := dto.NewContactMessageResponse(m)
	return &out, nil
}

// Delete elimina el mensaje.
func (uc *ContactUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
