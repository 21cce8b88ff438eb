package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DailyMissionRow misiones terminadas de un día natural.
type DailyMissionRow struct {
	Date      string // YYYY-MM-DD
	Realisees int
	EnRetard  int
}

// CategoryTotal suma de gastos de una categoría.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyDurationRow duración media (minutos) de las misiones terminadas de un mes.
// AverageMinutes es nil cuando la base devuelve NULL.
type MonthlyDurationRow struct {
	Month          string // YYYY-MM
	AverageMinutes *decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura del dashboard.
type AnalyticsRepository interface {
	CountMissionsByStatus(ctx context.Context, status entity.MissionStatus) (int, error)
	CountIncidents(ctx context.Context) (int, error)

	// FuelTotals suma carburante y distancia de las misiones Termine con distancia > 0.
	// Cero cuando no hay filas.
	FuelTotals(ctx context.Context) (fuel, distance decimal.Decimal, err error)

	// DailyMissionStats agrupa por día de created_at las misiones Termine creadas desde since.
	// Orden ascendente, sin días vacíos.
	DailyMissionStats(ctx context.Context, since time.Time) ([]DailyMissionRow, error)

	ExpenseTotalsByCategory(ctx context.Context) ([]CategoryTotal, error)

	// MonthlyAverageDuration agrupa por mes de created_at; orden ascendente.
	MonthlyAverageDuration(ctx context.Context) ([]MonthlyDurationRow, error)
}
