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
	"github.com/rs/zerolog"
)

const (
	recentMissionsLimit = 10
	documentURLTTL      = 60 * time.Second
)

// ChauffeurDeps dependencias del caso de uso de conductores.
type ChauffeurDeps struct {
	Chauffeurs repository.ChauffeurRepository
	Users      repository.UserRepository
	Missions   repository.MissionRepository
	Vehicules  repository.VehiculeRepository
	Incidents  repository.IncidentRepository
	Tx         ports.AccountsTxRunner
	Identity   ports.IdentityGateway
	Blobs      ports.BlobStore
	Mailer     ports.Mailer
	Log        zerolog.Logger
}

// ChauffeurUseCase alta en dos fases, ficha, documentos y formaciones de conductores.
type ChauffeurUseCase struct {
	ChauffeurDeps
	now func() time.Time
}

// NewChauffeurUseCase construye el caso de uso.
func NewChauffeurUseCase(d ChauffeurDeps) *ChauffeurUseCase {
	return &ChauffeurUseCase{ChauffeurDeps: d, now: time.Now}
}

// Create alta en dos fases:
//  1. cuenta en el proveedor de identidad (baneada si no hay acceso móvil);
//  2. Utilisateur + Chauffeur en una transacción local.
//
// Si la fase 2 falla se borra la cuenta remota. Si ese borrado también falla la
// cuenta queda huérfana: se registra en el log y se devuelve el error original.
// El correo de credenciales es best-effort.
func (uc *ChauffeurUseCase) Create(ctx context.Context, in dto.CreateChauffeurRequest) (*dto.ChauffeurResponse, error) {
	active := in.MobileAccess()
	remote, err := uc.Identity.CreateUser(ctx, ports.CreateIdentityInput{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
		Banned:   !active,
	})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	status := entity.StatusActif
	if !active {
		status = entity.StatusInactif
	}
	user := &entity.Utilisateur{
		ID:        remote.ID,
		Email:     in.Email,
		FullName:  in.FullName,
		UserType:  entity.UserTypeChauffeur,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ch := &entity.Chauffeur{
		UtilisateurID:   remote.ID,
		ChauffeurCode:   in.ChauffeurCode,
		BirthDate:       in.BirthDate.Ptr(),
		LicenseNumber:   in.LicenseNumber,
		LicenseCategory: in.LicenseCategory,
		ContractType:    in.ContractType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err = uc.Tx.RunAccounts(ctx, func(users repository.UserRepository, chauffeurs repository.ChauffeurRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return chauffeurs.Create(ctx, ch)
	})
	if err != nil {
		compensateIdentity(ctx, uc.Identity, uc.Log, remote.ID, err)
		return nil, err
	}

	if err := uc.Mailer.SendCredentials(ctx, in.Email, in.FullName, in.Password); err != nil {
		uc.Log.Warn().Err(err).Str("email", in.Email).Msg("envío de credenciales al conductor")
	}

	ch.FullName, ch.Email, ch.Status = user.FullName, user.Email, user.Status
	out := dto.NewChauffeurResponse(ch)
	return &out, nil
}

// compensateIdentity borra la cuenta remota tras un fallo local.
func compensateIdentity(ctx context.Context, identity ports.IdentityGateway, log zerolog.Logger, id string, cause error) {
	if err := identity.DeleteUser(ctx, id); err != nil {
		log.Error().Err(err).AnErr("cause", cause).Str("identity_id", id).
			Msg("cuenta de identidad huérfana: falló el borrado compensatorio")
		return
	}
	log.Warn().Err(cause).Str("identity_id", id).Msg("alta local fallida, cuenta de identidad eliminada")
}

// List lista conductores con búsqueda y paginación.
func (uc *ChauffeurUseCase) List(ctx context.Context, q dto.PageQuery) (dto.PageResponse[dto.ChauffeurResponse], error) {
	list, total, err := uc.Chauffeurs.List(ctx, listParams(&q))
	if err != nil {
		return dto.PageResponse[dto.ChauffeurResponse]{}, err
	}
	items := make([]dto.ChauffeurResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NewChauffeurResponse(c))
	}
	return dto.NewPage(items, total, q), nil
}

// Detail ficha completa: documentos, formaciones, incidentes, últimas misiones y vehículo actual.
func (uc *ChauffeurUseCase) Detail(ctx context.Context, id int64) (*dto.ChauffeurDetailResponse, error) {
	ch, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, err := uc.Chauffeurs.ListDocuments(ctx, id)
	if err != nil {
		return nil, err
	}
	formations, err := uc.Chauffeurs.ListFormations(ctx, id)
	if err != nil {
		return nil, err
	}
	incidents, err := uc.Incidents.ListByChauffeur(ctx, id)
	if err != nil {
		return nil, err
	}
	missions, err := uc.Missions.ListRecentByChauffeur(ctx, id, recentMissionsLimit)
	if err != nil {
		return nil, err
	}
	vehicle, err := uc.Vehicules.GetByChauffeur(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &dto.ChauffeurDetailResponse{
		ChauffeurResponse: dto.NewChauffeurResponse(ch),
		Documents:         make([]dto.DocumentResponse, 0, len(docs)),
		Formations:        make([]dto.FormationResponse, 0, len(formations)),
		Incidents:         make([]dto.IncidentResponse, 0, len(incidents)),
		Missions:          dto.NewMissionDetailList(missions),
	}
	for _, d := range docs {
		out.Documents = append(out.Documents, dto.NewDocumentResponse(d))
	}
	for _, f := range formations {
		out.Formations = append(out.Formations, dto.NewFormationResponse(f))
	}
	for _, i := range incidents {
		out.Incidents = append(out.Incidents, dto.NewIncidentResponse(i))
	}
	if vehicle != nil {
		v := dto.NewVehiculeResponse(vehicle)
		out.CurrentVehicle = &v
	}
	return out, nil
}

// Me perfil del conductor autenticado.
func (uc *ChauffeurUseCase) Me(ctx context.Context, chauffeurID *int64) (*dto.ChauffeurResponse, error) {
	if chauffeurID == nil {
		return nil, fmt.Errorf("perfil de conductor: %w", domain.ErrNotFound)
	}
	ch, err := uc.find(ctx, *chauffeurID)
	if err != nil {
		return nil, err
	}
	out := dto.NewChauffeurResponse(ch)
	return &out, nil
}

// Delete borra las filas locales y después la cuenta remota.
// Un fallo remoto no deshace el borrado local: queda registrado en el log.
func (uc *ChauffeurUseCase) Delete(ctx context.Context, id int64) error {
	ch, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	err = uc.Tx.RunAccounts(ctx, func(users repository.UserRepository, chauffeurs repository.ChauffeurRepository) error {
		if err := chauffeurs.Delete(ctx, id); err != nil {
			return err
		}
		return users.Delete(ctx, ch.UtilisateurID)
	})
	if err != nil {
		return err
	}
	if err := uc.Identity.DeleteUser(ctx, ch.UtilisateurID); err != nil {
		uc.Log.Error().Err(err).Str("identity_id", ch.UtilisateurID).Msg("borrar cuenta de identidad del conductor")
	}
	return nil
}

// AddFormation registra una formación completada.
func (uc *ChauffeurUseCase) AddFormation(ctx context.Context, id int64, in dto.CreateFormationRequest) (*dto.FormationResponse, error) {
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	f := &entity.Formation{
		ChauffeurID:   id,
		FormationName: in.FormationName,
		Description:   in.Description,
		DateCompleted: in.DateCompleted.Ptr(),
		CreatedAt:     uc.now(),
	}
	if err := uc.Chauffeurs.AddFormation(ctx, f); err != nil {
		return nil, err
	}
	out := dto.NewFormationResponse(f)
	return &out, nil
}

// AddIncident registro administrativo de un incidente (sin notificación).
func (uc *ChauffeurUseCase) AddIncident(ctx context.Context, id int64, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	i := &entity.Incident{
		ChauffeurID:  id,
		MissionID:    in.MissionID,
		IncidentType: in.IncidentType,
		Description:  in.Description,
		CreatedAt:    uc.now(),
	}
	if d := in.Date.Ptr(); d != nil {
		i.Date = *d
	}
	if err := uc.Incidents.Create(ctx, i); err != nil {
		return nil, err
	}
	out := dto.NewIncidentResponse(i)
	return &out, nil
}

// UploadDocument sube el archivo al bucket de documentos y guarda la ruta (no una URL:
// el bucket es privado y se lee con URLs firmadas).
func (uc *ChauffeurUseCase) UploadDocument(ctx context.Context, id int64, in dto.UploadDocumentRequest, file ports.FileUpload) (*dto.DocumentResponse, error) {
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	exp, err := parseOptionalDay("expirationDate", in.ExpirationDate)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	p := objectPath(fmt.Sprintf("chauffeur-%d", id), now, file.Name)
	if err := uc.Blobs.Upload(ctx, ports.BucketDocumentsChauffeur, p, file.Data, file.ContentType); err != nil {
		return nil, fmt.Errorf("subir documento del conductor %d: %w", id, err)
	}
	doc := &entity.DocumentChauffeur{
		ChauffeurID:    id,
		DocumentType:   in.DocumentType,
		FilePath:       p,
		ExpirationDate: exp,
		UploadedAt:     now,
	}
	if err := uc.Chauffeurs.AddDocument(ctx, doc); err != nil {
		return nil, err
	}
	out := dto.NewDocumentResponse(doc)
	return &out, nil
}

// UploadPicture sube la foto de perfil y guarda su URL pública.
func (uc *ChauffeurUseCase) UploadPicture(ctx context.Context, id int64, file ports.FileUpload) (*dto.ChauffeurResponse, error) {
	ch, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	p := objectPath(fmt.Sprintf("chauffeur-%d", id), uc.now(), file.Name)
	if err := uc.Blobs.Upload(ctx, ports.BucketProfilePictures, p, file.Data, file.ContentType); err != nil {
		return nil, fmt.Errorf("subir foto del conductor %d: %w", id, err)
	}
	ch.ProfilePictureURL = uc.Blobs.PublicURL(ports.BucketProfilePictures, p)
	if err := uc.Chauffeurs.UpdateProfilePicture(ctx, id, ch.ProfilePictureURL); err != nil {
		return nil, err
	}
	out := dto.NewChauffeurResponse(ch)
	return &out, nil
}

// DocumentURL URL firmada de lectura, válida 60 segundos.
func (uc *ChauffeurUseCase) DocumentURL(ctx context.Context, docID int64) (*dto.SignedURLResponse, error) {
	doc, err := uc.Chauffeurs.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("documento %d: %w", docID, domain.ErrNotFound)
	}
	url, err := uc.Blobs.SignedURL(ctx, ports.BucketDocumentsChauffeur, doc.FilePath, documentURLTTL)
	if err != nil {
		return nil, fmt.Errorf("firmar documento %d: %w", docID, err)
	}
	return &dto.SignedURLResponse{URL: url, ExpiresIn: int(documentURLTTL.Seconds())}, nil
}

func (uc *ChauffeurUseCase) find(ctx context.Context, id int64) (*entity.Chauffeur, error) {
	ch, err := uc.Chauffeurs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, fmt.Errorf("conductor %d: %w", id, domain.ErrNotFound)
	}
	return ch, nil
}
