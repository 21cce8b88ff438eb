package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

var _ repository.MissionRepository = (*MissionRepo)(nil)

const missionColumns = `m.id, m.mission_code, m.mission_type, m.chargement_type, m.status, m.client_id,
	m.chauffeur_depart_id, m.chauffeur_arrivee_id, m.vehicule_depart_id, m.vehicule_arrivee_id,
	m.date_depart, COALESCE(m.heure_presence_obligatoire, ''), COALESCE(m.heure_depart_estimee, ''),
	m.date_arrivee_estimee, COALESCE(m.heure_arrivee_estimee, ''), m.date_arrivee_reelle,
	COALESCE(m.lieu_depart, ''), COALESCE(m.lieu_arrivee, ''),
	m.distance_estimee_km, m.distance_reelle_km, m.carburant_consomme_l, m.created_at, m.updated_at`

const missionFrom = `
	FROM missions m
	JOIN clients cl ON cl.id = m.client_id
	JOIN chauffeurs cd ON cd.id = m.chauffeur_depart_id
	JOIN utilisateurs ud ON ud.id = cd.utilisateur_id
	LEFT JOIN chauffeurs ca ON ca.id = m.chauffeur_arrivee_id
	LEFT JOIN utilisateurs ua ON ua.id = ca.utilisateur_id
	JOIN vehicules vd ON vd.id = m.vehicule_depart_id
	LEFT JOIN vehicules va ON va.id = m.vehicule_arrivee_id`

const missionDetailSelect = `SELECT ` + missionColumns + `,
	cl.company_name, ud.full_name, COALESCE(ua.full_name, ''), vd.immatriculation, COALESCE(va.immatriculation, '')` + missionFrom

// MissionRepo misiones sobre PostgreSQL.
type MissionRepo struct {
	q Querier
}

// NewMissionRepository construye el adaptador.
func NewMissionRepository(q Querier) *MissionRepo {
	return &MissionRepo{q: q}
}

// Create persiste una misión.
func (r *MissionRepo) Create(ctx context.Context, m *entity.Mission) error {
	query := `
		INSERT INTO missions (mission_code, mission_type, chargement_type, status, client_id,
		                      chauffeur_depart_id, chauffeur_arrivee_id, vehicule_depart_id, vehicule_arrivee_id,
		                      date_depart, heure_presence_obligatoire, heure_depart_estimee, date_arrivee_estimee,
		                      heure_arrivee_estimee, date_arrivee_reelle, lieu_depart, lieu_arrivee,
		                      distance_estimee_km, distance_reelle_km, carburant_consomme_l, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.MissionCode, m.MissionType, m.ChargementType, m.Status, m.ClientID,
		m.ChauffeurDepartID, m.ChauffeurArriveeID, m.VehiculeDepartID, m.VehiculeArriveeID,
		m.DateDepart, nullIfEmpty(m.HeurePresenceObligatoire), nullIfEmpty(m.HeureDepartEstimee), m.DateArriveeEstimee,
		nullIfEmpty(m.HeureArriveeEstimee), m.DateArriveeReelle, nullIfEmpty(m.LieuDepart), nullIfEmpty(m.LieuArrivee),
		m.DistanceEstimeeKm, m.DistanceReelleKm, m.CarburantConsommeL, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: relación inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert mission: %w", err)
	}
	return nil
}

// GetByID obtiene la misión sin relaciones.
func (r *MissionRepo) GetByID(ctx context.Context, id int64) (*entity.Mission, error) {
	m, err := scanMission(r.q.QueryRow(ctx, `SELECT `+missionColumns+` FROM missions m WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mission: %w", err)
	}
	return m, nil
}

// GetDetail obtiene la misión con los nombres de cliente, conductores y vehículos.
func (r *MissionRepo) GetDetail(ctx context.Context, id int64) (*entity.MissionDetail, error) {
	d, err := scanMissionDetail(r.q.QueryRow(ctx, missionDetailSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mission detail: %w", err)
	}
	return d, nil
}

// List filtros combinables; orden por fecha de creación descendente.
func (r *MissionRepo) List(ctx context.Context, f repository.MissionFilter) ([]*entity.MissionDetail, int, error) {
	where, args := missionWhere(f)
	var (
		list  []*entity.MissionDetail
		total int
	)
	err := readSnapshot(ctx, r.q, func(tx pgx.Tx) error {
		n := len(args)
		rows, err := tx.Query(ctx,
			missionDetailSelect+where+fmt.Sprintf(` ORDER BY m.created_at DESC, m.id DESC LIMIT $%d OFFSET $%d`, n+1, n+2),
			append(args, f.Limit, f.Offset)...)
		if err != nil {
			return err
		}
		if list, err = collect(rows, scanMissionDetail); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*)`+missionFrom+where, args...).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list missions: %w", err)
	}
	return list, total, nil
}

// missionWhere construye la cláusula WHERE parametrizada; nunca interpola valores.
func missionWhere(f repository.MissionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(args))))
	}
	if f.Status != nil {
		add(`m.status = ?`, *f.Status)
	}
	if f.ClientID != nil {
		add(`m.client_id = ?`, *f.ClientID)
	}
	if f.ChauffeurID != nil {
		add(`(m.chauffeur_depart_id = ? OR m.chauffeur_arrivee_id = ?)`, *f.ChauffeurID)
	}
	if f.DateFrom != nil {
		add(`m.date_depart >= ?`, *f.DateFrom)
	}
	if f.DateTo != nil {
		add(`m.date_depart <= ?`, *f.DateTo)
	}
	if f.Search != "" {
		add(`(m.mission_code ILIKE ? OR cl.company_name ILIKE ? OR ud.full_name ILIKE ?
			OR COALESCE(ua.full_name, '') ILIKE ? OR vd.immatriculation ILIKE ?)`, likePattern(f.Search))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListActiveByChauffeur misiones Programme/En_cours del conductor de salida, por fecha de salida.
func (r *MissionRepo) ListActiveByChauffeur(ctx context.Context, chauffeurID int64) ([]*entity.MissionDetail, error) {
	rows, err := r.q.Query(ctx, missionDetailSelect+`
		WHERE m.chauffeur_depart_id = $1 AND m.status IN ($2, $3)
		ORDER BY m.date_depart ASC NULLS LAST, m.id ASC`,
		chauffeurID, entity.MissionEnCours, entity.MissionProgramme)
	if err != nil {
		return nil, fmt.Errorf("list active missions: %w", err)
	}
	return collect(rows, scanMissionDetail)
}

// ListRecentByChauffeur últimas misiones en las que participa el conductor.
func (r *MissionRepo) ListRecentByChauffeur(ctx context.Context, chauffeurID int64, limit int) ([]*entity.MissionDetail, error) {
	rows, err := r.q.Query(ctx, missionDetailSelect+`
		WHERE m.chauffeur_depart_id = $1 OR m.chauffeur_arrivee_id = $1
		ORDER BY m.created_at DESC LIMIT $2`, chauffeurID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent missions: %w", err)
	}
	return collect(rows, scanMissionDetail)
}

// UpdateStatus escribe estado y fecha de llegada real en una sola sentencia.
func (r *MissionRepo) UpdateStatus(ctx context.Context, id int64, status entity.MissionStatus, dateArriveeReelle *time.Time, updatedAt time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE missions SET status = $2, date_arrivee_reelle = $3, updated_at = $4
		WHERE id = $1`, id, status, dateArriveeReelle, updatedAt)
	if err != nil {
		return fmt.Errorf("update mission status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func missionDest(m *entity.Mission) []any {
	return []any{
		&m.ID, &m.MissionCode, &m.MissionType, &m.ChargementType, &m.Status, &m.ClientID,
		&m.ChauffeurDepartID, &m.ChauffeurArriveeID, &m.VehiculeDepartID, &m.VehiculeArriveeID,
		&m.DateDepart, &m.HeurePresenceObligatoire, &m.HeureDepartEstimee,
		&m.DateArriveeEstimee, &m.HeureArriveeEstimee, &m.DateArriveeReelle,
		&m.LieuDepart, &m.LieuArrivee,
		&m.DistanceEstimeeKm, &m.DistanceReelleKm, &m.CarburantConsommeL, &m.CreatedAt, &m.UpdatedAt,
	}
}

func scanMission(row pgx.Row) (*entity.Mission, error) {
	var m entity.Mission
	if err := row.Scan(missionDest(&m)...); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMissionDetail(row pgx.Row) (*entity.MissionDetail, error) {
	var d entity.MissionDetail
	dest := append(missionDest(&d.Mission),
		&d.ClientName, &d.ChauffeurDepartName, &d.ChauffeurArriveeName, &d.VehiculeDepartImmat, &d.VehiculeArriveeImmat)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &d, nil
}
