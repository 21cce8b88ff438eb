package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

// CarteUseCase tarjetas de carburante y peaje.
type CarteUseCase struct {
	repo       repository.CarteRepository
	chauffeurs repository.ChauffeurRepository
	now        func() time.Time
}

// NewCarteUseCase construye el caso de uso.
func NewCarteUseCase(repo repository.CarteRepository, chauffeurs repository.ChauffeurRepository) *CarteUseCase {
	return &CarteUseCase{repo: repo, chauffeurs: chauffeurs, now: time.Now}
}

// Create da de alta una tarjeta (Active por defecto).
func (uc *CarteUseCase) Create(ctx context.Context, in dto.CreateCarteRequest) (*dto.CarteResponse, error) {
	name, err := uc.chauffeurName(ctx, in.ChauffeurID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	c := &entity.Carte{
		CardNumber:     in.CardNumber,
		CardType:       entity.CardType(in.CardType),
		Status:         entity.CardStatus(in.Status),
		ExpirationDate: in.ExpirationDate.Ptr(),
		ChauffeurID:    in.ChauffeurID,
		ChauffeurName:  name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.Status == "" {
		c.Status = entity.CardStatusActive
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCarteResponse(c)
	return &out, nil
}

// GetByID obtiene una tarjeta.
func (uc *CarteUseCase) GetByID(ctx context.Context, id int64) (*dto.CarteResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewCarteResponse(c)
	return &out, nil
}

// List lista tarjetas con búsqueda por número o conductor.
func (uc *CarteUseCase) List(ctx context.Context, q dto.PageQuery) (dto.PageResponse[dto.CarteResponse], error) {
	list, total, err := uc.repo.List(ctx, listParams(&q))
	if err != nil {
		return dto.PageResponse[dto.CarteResponse]{}, err
	}
	items := make([]dto.CarteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NewCarteResponse(c))
	}
	return dto.NewPage(items, total, q), nil
}

// Update aplica los campos presentes. chauffeurId null desasigna, ausente no cambia.
func (uc *CarteUseCase) Update(ctx context.Context, id int64, in dto.UpdateCarteRequest) (*dto.CarteResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	setIf(&c.CardNumber, in.CardNumber)
	if in.CardType != nil {
		c.CardType = entity.CardType(*in.CardType)
	}
	if in.Status != nil {
		c.Status = entity.CardStatus(*in.Status)
	}
	if d := in.ExpirationDate.Ptr(); d != nil {
		c.ExpirationDate = d
	}
	if in.ChauffeurID.Set {
		name, err := uc.chauffeurName(ctx, in.ChauffeurID.Value)
		if err != nil {
			return nil, err
		}
		c.ChauffeurID = in.ChauffeurID.Value
		c.ChauffeurName = name
	}
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCarteResponse(c)
	return &out, nil
}

// Delete elimina la tarjeta.
func (uc *CarteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *CarteUseCase) chauffeurName(ctx context.Context, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	ch, err := uc.chauffeurs.GetByID(ctx, *id)
	if err != nil {
		return "", err
	}
	if ch == nil {
		return "", fmt.Errorf("%w: conductor %d no existe", domain.ErrInvalidInput, *id)
	}
	return ch.FullName, nil
}

func (uc *CarteUseCase) find(ctx context.Context, id int64) (*entity.Carte, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("tarjeta %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}
