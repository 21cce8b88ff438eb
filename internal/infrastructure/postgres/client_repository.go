package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, company_name, COALESCE(email, ''), COALESCE(contact_name, ''), COALESCE(phone_number, ''),
	COALESCE(address, ''), COALESCE(status, ''), COALESCE(profile_picture_url, ''), created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (company_name, email, contact_name, phone_number, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.CompanyName, nullIfEmpty(c.Email), nullIfEmpty(c.ContactName), nullIfEmpty(c.PhoneNumber),
		nullIfEmpty(c.Address), c.Status, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List búsqueda sin distinguir mayúsculas sobre los campos de texto; orden por razón social.
func (r *ClientRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Client, int, error) {
	const where = ` WHERE ($1::text = '' OR company_name ILIKE $2 OR contact_name ILIKE $2 OR email ILIKE $2
		OR phone_number ILIKE $2 OR address ILIKE $2 OR status ILIKE $2)`
	var (
		list  []*entity.Client
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+clientColumns+` FROM clients`+where+
			` ORDER BY company_name ASC LIMIT $3 OFFSET $4`, p.Search, likePattern(p.Search), p.Limit, p.Offset)
		if err != nil {
			return err
		}
		if list, err = collect(rows, scanClient); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM clients`+where, p.Search, likePattern(p.Search)).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	return list, total, nil
}

// Update reescribe los campos editables.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET company_name = $2, email = $3, contact_name = $4, phone_number = $5,
		       address = $6, status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyName, nullIfEmpty(c.Email), nullIfEmpty(c.ContactName), nullIfEmpty(c.PhoneNumber),
		nullIfEmpty(c.Address), c.Status, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateProfilePicture guarda la URL pública del logo.
func (r *ClientRepo) UpdateProfilePicture(ctx context.Context, id int64, url string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE clients SET profile_picture_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("update client picture: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el cliente; falla con ErrConflict si tiene misiones.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el cliente tiene misiones asociadas", domain.ErrConflict)
		}
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.CompanyName, &c.Email, &c.ContactName, &c.PhoneNumber,
		&c.Address, &c.Status, &c.ProfilePictureURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
