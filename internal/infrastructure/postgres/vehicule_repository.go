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

var _ repository.VehiculeRepository = (*VehiculeRepo)(nil)

const vehiculeColumns = `id, immatriculation, COALESCE(marque, ''), COALESCE(type_vehicule, ''),
	annee_fabrication, kilometrage_actuel, nombre_places, date_mise_circulation, etat_actuel,
	chauffeur_actuel_id, date_affectation_actuelle, COALESCE(utilisation_prevue, ''),
	COALESCE(remarques, ''), COALESCE(photo_url, ''), created_at, updated_at`

// VehiculeRepo vehículos y entretiens sobre PostgreSQL.
type VehiculeRepo struct {
	q Querier
}

// NewVehiculeRepository construye el adaptador.
func NewVehiculeRepository(q Querier) *VehiculeRepo {
	return &VehiculeRepo{q: q}
}

// Create persiste un vehículo.
func (r *VehiculeRepo) Create(ctx context.Context, v *entity.Vehicule) error {
	query := `
		INSERT INTO vehicules (immatriculation, marque, type_vehicule, annee_fabrication, kilometrage_actuel,
		                       nombre_places, date_mise_circulation, etat_actuel, chauffeur_actuel_id,
		                       date_affectation_actuelle, utilisation_prevue, remarques, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.Immatriculation, nullIfEmpty(v.Marque), nullIfEmpty(v.TypeVehicule), v.AnneeFabrication,
		v.KilometrageActuel, v.NombrePlaces, v.DateMiseCirculation, v.EtatActuel, v.ChauffeurActuelID,
		v.DateAffectationActuelle, nullIfEmpty(v.UtilisationPrevue), nullIfEmpty(v.Remarques),
		v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	return vehiculeWriteErr("insert", err)
}

// GetByID obtiene un vehículo.
func (r *VehiculeRepo) GetByID(ctx context.Context, id int64) (*entity.Vehicule, error) {
	return r.findOne(ctx, `SELECT `+vehiculeColumns+` FROM vehicules WHERE id = $1`, id)
}

// GetByChauffeur vehículo asignado actualmente al conductor (el más recientemente asignado).
func (r *VehiculeRepo) GetByChauffeur(ctx context.Context, chauffeurID int64) (*entity.Vehicule, error) {
	return r.findOne(ctx, `SELECT `+vehiculeColumns+` FROM vehicules WHERE chauffeur_actuel_id = $1
		ORDER BY date_affectation_actuelle DESC NULLS LAST, id DESC LIMIT 1`, chauffeurID)
}

func (r *VehiculeRepo) findOne(ctx context.Context, query string, arg any) (*entity.Vehicule, error) {
	v, err := scanVehicule(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicule: %w", err)
	}
	return v, nil
}

// List búsqueda por matrícula, marca o tipo.
func (r *VehiculeRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Vehicule, int, error) {
	const where = ` WHERE ($1::text = '' OR immatriculation ILIKE $2 OR marque ILIKE $2 OR type_vehicule ILIKE $2)`
	var (
		list  []*entity.Vehicule
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+vehiculeColumns+` FROM vehicules`+where+
			` ORDER BY immatriculation ASC LIMIT $3 OFFSET $4`, p.Search, likePattern(p.Search), p.Limit, p.Offset)
		if err != nil {
			return err
		}
		if list, err = collect(rows, scanVehicule); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM vehicules`+where, p.Search, likePattern(p.Search)).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicules: %w", err)
	}
	return list, total, nil
}

// Update reescribe los campos editables.
func (r *VehiculeRepo) Update(ctx context.Context, v *entity.Vehicule) error {
	query := `
		UPDATE vehicules SET immatriculation = $2, marque = $3, type_vehicule = $4, annee_fabrication = $5,
		       kilometrage_actuel = $6, nombre_places = $7, date_mise_circulation = $8, etat_actuel = $9,
		       chauffeur_actuel_id = $10, date_affectation_actuelle = $11, utilisation_prevue = $12,
		       remarques = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		v.ID, v.Immatriculation, nullIfEmpty(v.Marque), nullIfEmpty(v.TypeVehicule), v.AnneeFabrication,
		v.KilometrageActuel, v.NombrePlaces, v.DateMiseCirculation, v.EtatActuel, v.ChauffeurActuelID,
		v.DateAffectationActuelle, nullIfEmpty(v.UtilisationPrevue), nullIfEmpty(v.Remarques), v.UpdatedAt,
	)
	if err != nil {
		return vehiculeWriteErr("update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePhoto guarda la URL pública de la foto.
func (r *VehiculeRepo) UpdatePhoto(ctx context.Context, id int64, url string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE vehicules SET photo_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("update vehicule photo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const entretienColumns = `id, vehicule_id, type_entretien, date_entretien, date_prochain_entretien, COALESCE(notes, ''), created_at`

// AddEntretien registra un mantenimiento.
func (r *VehiculeRepo) AddEntretien(ctx context.Context, e *entity.Entretien) error {
	query := `
		INSERT INTO entretiens (vehicule_id, type_entretien, date_entretien, date_prochain_entretien, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, e.VehiculeID, e.TypeEntretien, e.DateEntretien, e.DateProchainEntretien,
		nullIfEmpty(e.Notes), e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert entretien: %w", err)
	}
	return nil
}

// GetEntretien obtiene un mantenimiento.
func (r *VehiculeRepo) GetEntretien(ctx context.Context, id int64) (*entity.Entretien, error) {
	e, err := scanEntretien(r.q.QueryRow(ctx, `SELECT `+entretienColumns+` FROM entretiens WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entretien: %w", err)
	}
	return e, nil
}

// UpdateEntretien reescribe un mantenimiento.
func (r *VehiculeRepo) UpdateEntretien(ctx context.Context, e *entity.Entretien) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE entretiens SET type_entretien = $2, date_entretien = $3, date_prochain_entretien = $4, notes = $5
		WHERE id = $1`, e.ID, e.TypeEntretien, e.DateEntretien, e.DateProchainEntretien, nullIfEmpty(e.Notes))
	if err != nil {
		return fmt.Errorf("update entretien: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteEntretien borra un mantenimiento.
func (r *VehiculeRepo) DeleteEntretien(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM entretiens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entretien: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListEntretiens historial del vehículo, el más reciente primero.
func (r *VehiculeRepo) ListEntretiens(ctx context.Context, vehiculeID int64) ([]*entity.Entretien, error) {
	rows, err := r.q.Query(ctx, `SELECT `+entretienColumns+` FROM entretiens
		WHERE vehicule_id = $1 ORDER BY date_entretien DESC, id DESC`, vehiculeID)
	if err != nil {
		return nil, fmt.Errorf("list entretiens: %w", err)
	}
	return collect(rows, scanEntretien)
}

func vehiculeWriteErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: conductor inexistente", domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s vehicule: %w", op, err)
}

func scanVehicule(row pgx.Row) (*entity.Vehicule, error) {
	var v entity.Vehicule
	err := row.Scan(
		&v.ID, &v.Immatriculation, &v.Marque, &v.TypeVehicule,
		&v.AnneeFabrication, &v.KilometrageActuel, &v.NombrePlaces, &v.DateMiseCirculation, &v.EtatActuel,
		&v.ChauffeurActuelID, &v.DateAffectationActuelle, &v.UtilisationPrevue,
		&v.Remarques, &v.PhotoURL, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanEntretien(row pgx.Row) (*entity.Entretien, error) {
	var e entity.Entretien
	err := row.Scan(&e.ID, &e.VehiculeID, &e.TypeEntretien, &e.DateEntretien, &e.DateProchainEntretien, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
