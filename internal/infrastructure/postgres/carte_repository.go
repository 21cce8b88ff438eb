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

var _ repository.CarteRepository = (*CarteRepo)(nil)

const carteSelect = `
	SELECT ca.id, ca.card_number, ca.card_type, ca.status, ca.expiration_date, ca.chauffeur_id,
	       COALESCE(u.full_name, ''), ca.created_at, ca.updated_at
	FROM cartes ca
	LEFT JOIN chauffeurs ch ON ch.id = ca.chauffeur_id
	LEFT JOIN utilisateurs u ON u.id = ch.utilisateur_id`

// CarteRepo tarjetas carburante/peaje sobre PostgreSQL.
type CarteRepo struct {
	q Querier
}

// NewCarteRepository construye el adaptador.
func NewCarteRepository(q Querier) *CarteRepo {
	return &CarteRepo{q: q}
}

// Create persiste una tarjeta.
func (r *CarteRepo) Create(ctx context.Context, c *entity.Carte) error {
	query := `
		INSERT INTO cartes (card_number, card_type, status, expiration_date, chauffeur_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.CardNumber, c.CardType, c.Status, c.ExpirationDate, c.ChauffeurID,
		c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	return carteWriteErr("insert", err)
}

// GetByID obtiene una tarjeta con el nombre del conductor asignado.
func (r *CarteRepo) GetByID(ctx context.Context, id int64) (*entity.Carte, error) {
	c, err := scanCarte(r.q.QueryRow(ctx, carteSelect+` WHERE ca.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carte: %w", err)
	}
	return c, nil
}

// List búsqueda por número de tarjeta o nombre del conductor.
func (r *CarteRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Carte, int, error) {
	const where = ` WHERE ($1::text = '' OR ca.card_number ILIKE $2 OR u.full_name ILIKE $2)`
	var (
		list  []*entity.Carte
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, carteSelect+where+` ORDER BY ca.created_at DESC LIMIT $3 OFFSET $4`,
			p.Search, likePattern(p.Search), p.Limit, p.Offset)
		if err != nil {
			return err
		}
		if list, err = collect(rows, scanCarte); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM cartes ca
			LEFT JOIN chauffeurs ch ON ch.id = ca.chauffeur_id
			LEFT JOIN utilisateurs u ON u.id = ch.utilisateur_id`+where, p.Search, likePattern(p.Search)).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list cartes: %w", err)
	}
	return list, total, nil
}

// Update reescribe la tarjeta; chauffeur_id NULL la desasigna.
func (r *CarteRepo) Update(ctx context.Context, c *entity.Carte) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE cartes SET card_number = $2, card_type = $3, status = $4, expiration_date = $5,
		       chauffeur_id = $6, updated_at = $7
		WHERE id = $1`, c.ID, c.CardNumber, c.CardType, c.Status, c.ExpirationDate, c.ChauffeurID, c.UpdatedAt)
	if err != nil {
		return carteWriteErr("update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la tarjeta.
func (r *CarteRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cartes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete carte: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func carteWriteErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: conductor inexistente", domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s carte: %w", op, err)
}

func scanCarte(row pgx.Row) (*entity.Carte, error) {
	var c entity.Carte
	err := row.Scan(&c.ID, &c.CardNumber, &c.CardType, &c.Status, &c.ExpirationDate, &c.ChauffeurID,
		&c.ChauffeurName, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
