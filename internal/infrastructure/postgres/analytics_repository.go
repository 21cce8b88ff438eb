package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura del dashboard.
// Los agrupamientos por día y mes usan la zona horaria de la sesión de PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) CountMissionsByStatus(ctx context.Context, status entity.MissionStatus) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM missions WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountMissionsByStatus: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) CountIncidents(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM incidents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountIncidents: %w", err)
	}
	return n, nil
}

// FuelTotals sumas de carburante y distancia real sobre misiones terminadas con distancia > 0.
func (r *AnalyticsRepo) FuelTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(carburant_consomme_l), 0),
	       COALESCE(SUM(distance_reelle_km), 0)
	FROM missions
	WHERE status = $1
	  AND distance_reelle_km > 0`

	var fuel, distance decimal.Decimal
	if err := r.q.QueryRow(ctx, query, entity.MissionTermine).Scan(&fuel, &distance); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.FuelTotals: %w", err)
	}
	return fuel, distance, nil
}

// DailyMissionStats misiones terminadas y en retraso por día de creación.
func (r *AnalyticsRepo) DailyMissionStats(ctx context.Context, since time.Time) ([]repository.DailyMissionRow, error) {
	const query = `
	SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD')                 AS day,
	       COUNT(*)                                                             AS realisees,
	       COUNT(*) FILTER (WHERE date_arrivee_reelle > date_arrivee_estimee)   AS en_retard
	FROM missions
	WHERE status = $1
	  AND created_at >= $2
	GROUP BY date_trunc('day', created_at)
	ORDER BY date_trunc('day', created_at) ASC`

	rows, err := r.q.Query(ctx, query, entity.MissionTermine, since)
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyMissionStats: %w", err)
	}
	out, err := collectValues(rows, func(row pgx.Row) (repository.DailyMissionRow, error) {
		var d repository.DailyMissionRow
		err := row.Scan(&d.Date, &d.Realisees, &d.EnRetard)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyMissionStats: %w", err)
	}
	return out, nil
}

func (r *AnalyticsRepo) ExpenseTotalsByCategory(ctx context.Context) ([]repository.CategoryTotal, error) {
	const query = `
	SELECT category, COALESCE(SUM(amount), 0)
	FROM expenses
	GROUP BY category
	ORDER BY category`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ExpenseTotalsByCategory: %w", err)
	}
	out, err := collectValues(rows, func(row pgx.Row) (repository.CategoryTotal, error) {
		var c repository.CategoryTotal
		err := row.Scan(&c.Category, &c.Total)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("analytics.ExpenseTotalsByCategory: %w", err)
	}
	return out, nil
}

// MonthlyAverageDuration duración media en minutos entre salida y llegada real, por mes de creación.
func (r *AnalyticsRepo) MonthlyAverageDuration(ctx context.Context) ([]repository.MonthlyDurationRow, error) {
	const query = `
	SELECT to_char(date_trunc('month', created_at), 'YYYY-MM'),
	       AVG(EXTRACT(EPOCH FROM (date_arrivee_reelle - date_depart)) / 60)
	FROM missions
	WHERE status = $1
	  AND date_arrivee_reelle IS NOT NULL
	  AND date_depart IS NOT NULL
	GROUP BY date_trunc('month', created_at)
	ORDER BY date_trunc('month', created_at) ASC`

	rows, err := r.q.Query(ctx, query, entity.MissionTermine)
	if err != nil {
		return nil, fmt.Errorf("analytics.MonthlyAverageDuration: %w", err)
	}
	out, err := collectValues(rows, func(row pgx.Row) (repository.MonthlyDurationRow, error) {
		var m repository.MonthlyDurationRow
		err := row.Scan(&m.Month, &m.AverageMinutes)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("analytics.MonthlyAverageDuration: %w", err)
	}
	return out, nil
}
