package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

var _ repository.ChauffeurRepository = (*ChauffeurRepo)(nil)

const chauffeurSelect = `
	SELECT c.id, c.utilisateur_id::text, c.chauffeur_code, c.birth_date,
	       COALESCE(c.license_number, ''), COALESCE(c.license_category, ''), COALESCE(c.contract_type, ''),
	       COALESCE(c.profile_picture_url, ''), c.created_at, c.updated_at,
	       u.full_name, u.email, u.status
	FROM chauffeurs c
	JOIN utilisateurs u ON u.id = c.utilisateur_id`

// ChauffeurRepo conductores, sus documentos y formaciones sobre PostgreSQL (pool o tx).
type ChauffeurRepo struct {
	q Querier
}

// NewChauffeurRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChauffeurRepository(q Querier) *ChauffeurRepo {
	return &ChauffeurRepo{q: q}
}

// Create persiste el perfil; el usuario debe existir (misma tx en el alta).
func (r *ChauffeurRepo) Create(ctx context.Context, c *entity.Chauffeur) error {
	query := `
		INSERT INTO chauffeurs (utilisateur_id, chauffeur_code, birth_date, license_number, license_category,
		                        contract_type, profile_picture_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.UtilisateurID, c.ChauffeurCode, c.BirthDate, nullIfEmpty(c.LicenseNumber), nullIfEmpty(c.LicenseCategory),
		nullIfEmpty(c.ContractType), nullIfEmpty(c.ProfilePictureURL), c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chauffeur: %w", err)
	}
	return nil
}

// GetByID obtiene un conductor por ID.
func (r *ChauffeurRepo) GetByID(ctx context.Context, id int64) (*entity.Chauffeur, error) {
	return r.findOne(ctx, chauffeurSelect+` WHERE c.id = $1`, id)
}

// GetByUserID obtiene el perfil vinculado a una cuenta.
func (r *ChauffeurRepo) GetByUserID(ctx context.Context, userID string) (*entity.Chauffeur, error) {
	return r.findOne(ctx, chauffeurSelect+` WHERE c.utilisateur_id = $1`, userID)
}

func (r *ChauffeurRepo) findOne(ctx context.Context, query string, arg any) (*entity.Chauffeur, error) {
	c, err := scanChauffeur(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chauffeur: %w", err)
	}
	return c, nil
}

// List búsqueda por código, nombre o email; orden por nombre.
func (r *ChauffeurRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Chauffeur, int, error) {
	const where = ` WHERE ($1::text = '' OR c.chauffeur_code ILIKE $2 OR u.full_name ILIKE $2 OR u.email ILIKE $2)`
	var (
		list  []*entity.Chauffeur
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, chauffeurSelect+where+` ORDER BY u.full_name ASC LIMIT $3 OFFSET $4`,
			p.Search, likePattern(p.Search), p.Limit, p.Offset)
		if err != nil {
			return err
		}
		if list, err = collect(rows, scanChauffeur); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM chauffeurs c JOIN utilisateurs u ON u.id = c.utilisateur_id`+where,
			p.Search, likePattern(p.Search)).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list chauffeurs: %w", err)
	}
	return list, total, nil
}

// UpdateProfilePicture guarda la URL pública de la foto.
func (r *ChauffeurRepo) UpdateProfilePicture(ctx context.Context, id int64, url string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE chauffeurs SET profile_picture_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("update chauffeur picture: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el perfil; documentos y formaciones caen por ON DELETE CASCADE.
func (r *ChauffeurRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM chauffeurs WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el conductor tiene misiones asociadas", domain.ErrConflict)
		}
		return fmt.Errorf("delete chauffeur: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddDocument registra un documento subido.
func (r *ChauffeurRepo) AddDocument(ctx context.Context, d *entity.DocumentChauffeur) error {
	query := `
		INSERT INTO documents_chauffeurs (chauffeur_id, document_type, file_path, expiration_date, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, d.ChauffeurID, d.DocumentType, d.FilePath, d.ExpirationDate, d.UploadedAt).Scan(&d.ID); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

const documentColumns = `d.id, d.chauffeur_id, d.document_type, d.file_path, d.expiration_date, d.uploaded_at`

// GetDocument obtiene un documento por ID.
func (r *ChauffeurRepo) GetDocument(ctx context.Context, id int64) (*entity.DocumentChauffeur, error) {
	d, err := scanDocument(r.q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents_chauffeurs d WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// ListDocuments documentos del conductor, los más recientes primero.
func (r *ChauffeurRepo) ListDocuments(ctx context.Context, chauffeurID int64) ([]*entity.DocumentChauffeur, error) {
	rows, err := r.q.Query(ctx, `SELECT `+documentColumns+` FROM documents_chauffeurs d
		WHERE d.chauffeur_id = $1 ORDER BY d.uploaded_at DESC`, chauffeurID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return collect(rows, scanDocument)
}

// ListExpiringDocuments documentos con expiration_date en [from, to], ambos incluidos.
// La fecha se compara como instante (medianoche de la sesión), no truncando from a día.
func (r *ChauffeurRepo) ListExpiringDocuments(ctx context.Context, from, to time.Time) ([]*entity.ExpiringDocument, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+documentColumns+`, u.full_name
		FROM documents_chauffeurs d
		JOIN chauffeurs c ON c.id = d.chauffeur_id
		JOIN utilisateurs u ON u.id = c.utilisateur_id
		WHERE d.expiration_date IS NOT NULL
		  AND d.expiration_date >= $1::timestamptz AND d.expiration_date <= $2::timestamptz
		ORDER BY d.expiration_date ASC, d.id ASC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expiring documents: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.ExpiringDocument, error) {
		var e entity.ExpiringDocument
		err := row.Scan(&e.ID, &e.ChauffeurID, &e.DocumentType, &e.FilePath, &e.ExpirationDate, &e.UploadedAt, &e.ChauffeurName)
		return &e, err
	})
}

// AddFormation registra una formación.
func (r *ChauffeurRepo) AddFormation(ctx context.Context, f *entity.Formation) error {
	query := `
		INSERT INTO formations (chauffeur_id, formation_name, description, date_completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, f.ChauffeurID, f.FormationName, nullIfEmpty(f.Description), f.DateCompleted, f.CreatedAt).Scan(&f.ID); err != nil {
		return fmt.Errorf("insert formation: %w", err)
	}
	return nil
}

// ListFormations formaciones del conductor.
func (r *ChauffeurRepo) ListFormations(ctx context.Context, chauffeurID int64) ([]*entity.Formation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, chauffeur_id, formation_name, COALESCE(description, ''), date_completed, created_at
		FROM formations WHERE chauffeur_id = $1 ORDER BY date_completed DESC NULLS LAST, id DESC`, chauffeurID)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.Formation, error) {
		var f entity.Formation
		err := row.Scan(&f.ID, &f.ChauffeurID, &f.FormationName, &f.Description, &f.DateCompleted, &f.CreatedAt)
		return &f, err
	})
}

func scanChauffeur(row pgx.Row) (*entity.Chauffeur, error) {
	var c entity.Chauffeur
	err := row.Scan(
		&c.ID, &c.UtilisateurID, &c.ChauffeurCode, &c.BirthDate,
		&c.LicenseNumber, &c.LicenseCategory, &c.ContractType,
		&c.ProfilePictureURL, &c.CreatedAt, &c.UpdatedAt,
		&c.FullName, &c.Email, &c.Status,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanDocument(row pgx.Row) (*entity.DocumentChauffeur, error) {
	var d entity.DocumentChauffeur
	if err := row.Scan(&d.ID, &d.ChauffeurID, &d.DocumentType, &d.FilePath, &d.ExpirationDate, &d.UploadedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
