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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id::text, email, full_name, user_type, status, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. El id viene del proveedor de identidad.
func (r *UserRepo) Create(ctx context.Context, u *entity.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (id, email, full_name, user_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, u.ID, u.Email, u.FullName, u.UserType, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert utilisateur: %w", err)
	}
	return nil
}

// Upsert crea o actualiza nombre, rol y estado (usado por el seed).
func (r *UserRepo) Upsert(ctx context.Context, u *entity.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (id, email, full_name, user_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, full_name = EXCLUDED.full_name,
		    user_type = EXCLUDED.user_type, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, u.ID, u.Email, u.FullName, u.UserType, u.Status, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert utilisateur: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.Utilisateur, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM utilisateurs WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.Utilisateur, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM utilisateurs WHERE lower(email) = lower($1)`, email)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.Utilisateur, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utilisateur: %w", err)
	}
	return u, nil
}

// List lista usuarios ordenados por nombre; búsqueda por nombre o email.
func (r *UserRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Utilisateur, int, error) {
	const where = `WHERE ($1::text = '' OR full_name ILIKE $2 OR email ILIKE $2)`
	var (
		list  []*entity.Utilisateur
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+userColumns+` FROM utilisateurs `+where+`
			ORDER BY full_name ASC LIMIT $3 OFFSET $4`, p.Search, likePattern(p.Search), p.Limit, p.Offset)
		if err != nil {
			return err
		}
		list, err = collect(rows, scanUser)
		if err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM utilisateurs `+where, p.Search, likePattern(p.Search)).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list utilisateurs: %w", err)
	}
	return list, total, nil
}

// UpdateFullName actualiza el nombre.
func (r *UserRepo) UpdateFullName(ctx context.Context, id, fullName string) error {
	return r.exec(ctx, "update full_name",
		`UPDATE utilisateurs SET full_name = $2, updated_at = now() WHERE id = $1`, id, fullName)
}

// UpdateStatus actualiza la copia local del estado de ban.
func (r *UserRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.exec(ctx, "update status",
		`UPDATE utilisateurs SET status = $2, updated_at = now() WHERE id = $1`, id, status)
}

// Delete borra la fila local.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, "delete", `DELETE FROM utilisateurs WHERE id = $1`, id)
}

func (r *UserRepo) exec(ctx context.Context, op, query string, args ...any) error {
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("utilisateur %s: %w", op, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.Utilisateur, error) {
	var u entity.Utilisateur
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.UserType, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// collect recorre rows aplicando scan a cada fila.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var out []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func collectValues[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
