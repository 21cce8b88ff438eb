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

const defaultClientStatus = "Actif"

// ClientUseCase aplica reglas de negocio para clientes (casos de uso).
type ClientUseCase struct {
	repo  repository.ClientRepository
	blobs ports.BlobStore
	now   func() time.Time
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia y el almacenamiento de archivos.
func NewClientUseCase(repo repository.ClientRepository, blobs ports.BlobStore) *ClientUseCase {
	return &ClientUseCase{repo: repo, blobs: blobs, now: time.Now}
}

// Create crea un cliente. Devuelve domain.ErrDuplicate si el email ya existe.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := uc.now()
	c := &entity.Client{
		CompanyName: in.CompanyName,
		Email:       in.Email,
		ContactName: in.ContactName,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Status == "" {
		c.Status = defaultClientStatus
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewClientResponse(c)
	return &out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewClientResponse(c)
	return &out, nil
}

// List lista clientes con búsqueda y paginación.
func (uc *ClientUseCase) List(ctx context.Context, q dto.PageQuery) (dto.PageResponse[dto.ClientResponse], error) {
	list, total, err := uc.repo.List(ctx, listParams(&q))
	if err != nil {
		return dto.PageResponse[dto.ClientResponse]{}, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NewClientResponse(c))
	}
	return dto.NewPage(items, total, q), nil
}

// Update aplica solo los campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	setIf(&c.CompanyName, in.CompanyName)
	setIf(&c.Email, in.Email)
	setIf(&c.ContactName, in.ContactName)
	setIf(&c.PhoneNumber, in.PhoneNumber)
	setIf(&c.Address, in.Address)
	setIf(&c.Status, in.Status)
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewClientResponse(c)
	return &out, nil
}

// Delete elimina el cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// UploadPicture sube la foto al bucket de perfiles y guarda su URL pública.
func (uc *ClientUseCase) UploadPicture(ctx context.Context, id int64, file ports.FileUpload) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	p := objectPath(fmt.Sprintf("client-%d", id), uc.now(), file.Name)
	if err := uc.blobs.Upload(ctx, ports.BucketProfilePictures, p, file.Data, file.ContentType); err != nil {
		return nil, fmt.Errorf("subir foto de cliente %d: %w", id, err)
	}
	c.ProfilePictureURL = uc.blobs.PublicURL(ports.BucketProfilePictures, p)
	if err := uc.repo.UpdateProfilePicture(ctx, id, c.ProfilePictureURL); err != nil {
		return nil, err
	}
	out := dto.NewClientResponse(c)
	return &out, nil
}

func (uc *ClientUseCase) find(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("cliente %d: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
