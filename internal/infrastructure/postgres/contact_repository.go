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

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `id, name, email, message, status, created_at`

// ContactRepo mensajes de contacto sobre PostgreSQL.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un mensaje.
func (r *ContactRepo) Create(ctx context.Context, m *entity.ContactMessage) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, m.Name, m.Email, m.Message, m.Status, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// GetByID obtiene un mensaje.
func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	m, err := scanContact(r.q.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	return m, nil
}

// List los más recientes primero; búsqueda por nombre, email o texto.
func (r *ContactRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.ContactMessage, int, error) {
	const where = ` WHERE ($1::text = '' OR name ILIKE $2 OR email ILIKE $2 OR message ILIKE $2)`
	var (
		list  []*entity.ContactMessage
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+contactColumns+` FROM contact_messages`+where+
			` ORDER BY created_at DESC LIMIT $3 OFFSET $4`, p.Search, likePattern(p.Search), p.Limit, p.Offset)
		if err != nil {
			return err
		}
		if list, err = collect(rows, scanContact); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`+where, p.Search, likePattern(p.Search)).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	return list, total, nil
}

// UpdateStatus marca el mensaje.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id int64, status entity.MessageStatus) error {
	cmd, err := r.q.Exec(ctx, `UPDATE contact_messages SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update contact message: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el mensaje.
func (r *ContactRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (*entity.ContactMessage, error) {
	var m entity.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
