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

// VehiculeUseCase flota: vehículos, fotos y mantenimiento.
type VehiculeUseCase struct {
	repo       repository.VehiculeRepository
	chauffeurs repository.ChauffeurRepository
	blobs      ports.BlobStore
	now        func() time.Time
}

// NewVehiculeUseCase construye el caso de uso.
func NewVehiculeUseCase(repo repository.VehiculeRepository, chauffeurs repository.ChauffeurRepository, blobs ports.BlobStore) *VehiculeUseCase {
	return &VehiculeUseCase{repo: repo, chauffeurs: chauffeurs, blobs: blobs, now: time.Now}
}

// Create da de alta un vehículo. Devuelve domain.ErrDuplicate si la matrícula ya existe.
func (uc *VehiculeUseCase) Create(ctx context.Context, in dto.CreateVehiculeRequest) (*dto.VehiculeResponse, error) {
	if err := uc.checkChauffeur(ctx, in.ChauffeurActuelID); err != nil {
		return nil, err
	}
	now := uc.now()
	v := &entity.Vehicule{
		Immatriculation:         in.Immatriculation,
		Marque:                  in.Marque,
		TypeVehicule:            in.TypeVehicule,
		AnneeFabrication:        in.AnneeFabrication,
		KilometrageActuel:       in.KilometrageActuel,
		NombrePlaces:            in.NombrePlaces,
		DateMiseCirculation:     in.DateMiseCirculation.Ptr(),
		EtatActuel:              entity.EtatVehicule(in.EtatActuel),
		ChauffeurActuelID:       in.ChauffeurActuelID,
		DateAffectationActuelle: in.DateAffectationActuelle.Ptr(),
		UtilisationPrevue:       in.UtilisationPrevue,
		Remarques:               in.Remarques,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if v.EtatActuel == "" {
		v.EtatActuel = entity.EtatBonEtat
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := dto.NewVehiculeResponse(v)
	return &out, nil
}

// List lista vehículos con búsqueda y paginación.
func (uc *VehiculeUseCase) List(ctx context.Context, q dto.PageQuery) (dto.PageResponse[dto.VehiculeResponse], error) {
	list, total, err := uc.repo.List(ctx, listParams(&q))
	if err != nil {
		return dto.PageResponse[dto.VehiculeResponse]{}, err
	}
	items := make([]dto.VehiculeResponse, 0, len(list))
	for _, v := range list {
		items = append(items, dto.NewVehiculeResponse(v))
	}
	return dto.NewPage(items, total, q), nil
}

// Detail vehículo con historial de mantenimiento y conductor actual.
func (uc *VehiculeUseCase) Detail(ctx context.Context, id int64) (*dto.VehiculeDetailResponse, error) {
	v, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	entretiens, err := uc.repo.ListEntretiens(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.VehiculeDetailResponse{
		VehiculeResponse: dto.NewVehiculeResponse(v),
		Entretiens:       make([]dto.EntretienResponse, 0, len(entretiens)),
	}
	for _, e := range entretiens {
		out.Entretiens = append(out.Entretiens, dto.NewEntretienResponse(e))
	}
	if v.ChauffeurActuelID != nil {
		ch, err := uc.chauffeurs.GetByID(ctx, *v.ChauffeurActuelID)
		if err != nil {
			return nil, err
		}
		if ch != nil {
			r := dto.NewChauffeurResponse(ch)
			out.ChauffeurActuel = &r
		}
	}
	return out, nil
}

// Update aplica solo los campos presentes; chauffeurActuelId null desasigna.
func (uc *VehiculeUseCase) Update(ctx context.Context, id int64, in dto.UpdateVehiculeRequest) (*dto.VehiculeResponse, error) {
	v, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	setIf(&v.Immatriculation, in.Immatriculation)
	setIf(&v.Marque, in.Marque)
	setIf(&v.TypeVehicule, in.TypeVehicule)
	setIf(&v.UtilisationPrevue, in.UtilisationPrevue)
	setIf(&v.Remarques, in.Remarques)
	if in.AnneeFabrication != nil {
		v.AnneeFabrication = in.AnneeFabrication
	}
	if in.KilometrageActuel != nil {
		v.KilometrageActuel = in.KilometrageActuel
	}
	if in.NombrePlaces != nil {
		v.NombrePlaces = in.NombrePlaces
	}
	if d := in.DateMiseCirculation.Ptr(); d != nil {
		v.DateMiseCirculation = d
	}
	if d := in.DateAffectationActuelle.Ptr(); d != nil {
		v.DateAffectationActuelle = d
	}
	if in.EtatActuel != nil {
		v.EtatActuel = entity.EtatVehicule(*in.EtatActuel)
	}
	if in.ChauffeurActuelID.Set {
		if err := uc.checkChauffeur(ctx, in.ChauffeurActuelID.Value); err != nil {
			return nil, err
		}
		v.ChauffeurActuelID = in.ChauffeurActuelID.Value
	}
	v.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	out := dto.NewVehiculeResponse(v)
	return &out, nil
}

// UploadPhoto sube la foto al bucket de vehículos y guarda su URL pública.
func (uc *VehiculeUseCase) UploadPhoto(ctx context.Context, id int64, file ports.FileUpload) (*dto.VehiculeResponse, error) {
	v, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	p := objectPath(fmt.Sprintf("vehicule-%d", id), uc.now(), file.Name)
	if err := uc.blobs.Upload(ctx, ports.BucketVehiculesPhotos, p, file.Data, file.ContentType); err != nil {
		return nil, fmt.Errorf("subir foto del vehículo %d: %w", id, err)
	}
	v.PhotoURL = uc.blobs.PublicURL(ports.BucketVehiculesPhotos, p)
	if err := uc.repo.UpdatePhoto(ctx, id, v.PhotoURL); err != nil {
		return nil, err
	}
	out := dto.NewVehiculeResponse(v)
	return &out, nil
}

// MyVehicle vehículo asignado actualmente al conductor.
func (uc *VehiculeUseCase) MyVehicle(ctx context.Context, chauffeurID *int64) (*dto.VehiculeResponse, error) {
	if chauffeurID == nil {
		return nil, fmt.Errorf("perfil de conductor: %w", domain.ErrNotFound)
	}
	v, err := uc.repo.GetByChauffeur(ctx, *chauffeurID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("vehículo del conductor %d: %w", *chauffeurID, domain.ErrNotFound)
	}
	out := dto.NewVehiculeResponse(v)
	return &out, nil
}

// AddEntretien registra un mantenimiento.
func (uc *VehiculeUseCase) AddEntretien(ctx context.Context, vehiculeID int64, in dto.EntretienRequest) (*dto.EntretienResponse, error) {
	if _, err := uc.find(ctx, vehiculeID); err != nil {
		return nil, err
	}
	e := &entity.Entretien{
		VehiculeID:            vehiculeID,
		TypeEntretien:         in.TypeEntretien,
		DateProchainEntretien: in.DateProchainEntretien.Ptr(),
		Notes:                 in.Notes,
		CreatedAt:             uc.now(),
	}
	if d := in.DateEntretien.Ptr(); d != nil {
		e.DateEntretien = *d
	}
	if err := uc.repo.AddEntretien(ctx, e); err != nil {
		return nil, err
	}
	out := dto.NewEntretienResponse(e)
	return &out, nil
}

// UpdateEntretien modifica un mantenimiento existente.
func (uc *VehiculeUseCase) UpdateEntretien(ctx context.Context, id int64, in dto.UpdateEntretienRequest) (*dto.EntretienResponse, error) {
	e, err := uc.repo.GetEntretien(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("entretien %d: %w", id, domain.ErrNotFound)
	}
	setIf(&e.TypeEntretien, in.TypeEntretien)
	setIf(&e.Notes, in.Notes)
	if d := in.DateEntretien.Ptr(); d != nil {
		e.DateEntretien = *d
	}
	if d := in.DateProchainEntretien.Ptr(); d != nil {
		e.DateProchainEntretien = d
	}
	if err := uc.repo.UpdateEntretien(ctx, e); err != nil {
		return nil, err
	}
	out := dto.NewEntretienResponse(e)
	return &out, nil
}

// DeleteEntretien borra un mantenimiento.
func (uc *VehiculeUseCase) DeleteEntretien(ctx context.Context, id int64) error {
	return uc.repo.DeleteEntretien(ctx, id)
}

func (uc *VehiculeUseCase) checkChauffeur(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	ch, err := uc.chauffeurs.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if ch == nil {
		return fmt.Errorf("%w: conductor %d no existe", domain.ErrInvalidInput, *id)
	}
	return nil
}

func (uc *VehiculeUseCase) find(ctx context.Context, id int64) (*entity.Vehicule, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("vehículo %d: %w", id, domain.ErrNotFound)
	}
	return v, nil
}
