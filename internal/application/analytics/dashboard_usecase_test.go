package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Fake del repositorio ────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	counts     map[entity.MissionStatus]int
	incidents  int
	fuel, dist decimal.Decimal
	daily      []repository.DailyMissionRow
	expenses   []repository.CategoryTotal
	monthly    []repository.MonthlyDurationRow

	failExpenses error
	dailySince   time.Time
}

func (f *fakeAnalyticsRepo) CountMissionsByStatus(_ context.Context, s entity.MissionStatus) (int, error) {
	return f.counts[s], nil
}

func (f *fakeAnalyticsRepo) CountIncidents(context.Context) (int, error) { return f.incidents, nil }

func (f *fakeAnalyticsRepo) FuelTotals(context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return f.fuel, f.dist, nil
}

func (f *fakeAnalyticsRepo) DailyMissionStats(_ context.Context, since time.Time) ([]repository.DailyMissionRow, error) {
	f.dailySince = since
	return f.daily, nil
}

func (f *fakeAnalyticsRepo) ExpenseTotalsByCategory(context.Context) ([]repository.CategoryTotal, error) {
	if f.failExpenses != nil {
		return nil, f.failExpenses
	}
	return f.expenses, nil
}

func (f *fakeAnalyticsRepo) MonthlyAverageDuration(context.Context) ([]repository.MonthlyDurationRow, error) {
	return f.monthly, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ─── Fórmulas ────────────────────────────────────────────────────────────────

func TestFuelRate(t *testing.T) {
	assert.True(t, dec("7.5").Equal(FuelRate(dec("30"), dec("400"))))
	assert.True(t, dec("33.33").Equal(FuelRate(dec("100"), dec("300"))))
	assert.True(t, FuelRate(decimal.Zero, dec("300")).IsZero())
	assert.True(t, FuelRate(dec("12"), decimal.Zero).IsZero(), "sin distancia no hay división")
}

func TestExpenseShares_SumaCien(t *testing.T) {
	shares := ExpenseShares([]repository.CategoryTotal{
		{Category: "Carburant", Total: dec("100")},
		{Category: "Péage", Total: dec("100")},
		{Category: "Entretien", Total: dec("100")},
	})
	require.Len(t, shares, 3)

	sum := decimal.Zero
	for _, s := range shares {
		assert.True(t, dec("33.33").Equal(s.Percentage), s.Category)
		sum = sum.Add(s.Percentage)
	}
	// ± redondeo
	assert.True(t, sum.Sub(dec("100")).Abs().LessThanOrEqual(dec("0.02")))
}

func TestExpenseShares_TotalCeroDevuelveListaVacia(t *testing.T) {
	shares := ExpenseShares([]repository.CategoryTotal{{Category: "Amendes", Total: decimal.Zero}})
	assert.NotNil(t, shares)
	assert.Empty(t, shares)

	assert.Empty(t, ExpenseShares(nil))
}

// ─── GetAnalytics ────────────────────────────────────────────────────────────

func TestGetAnalytics_ConstruyeInstantanea(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	avg := dec("125.456")
	repo := &fakeAnalyticsRepo{
		counts:    map[entity.MissionStatus]int{entity.MissionEnCours: 4, entity.MissionTermine: 9},
		incidents: 2,
		fuel:      dec("45"),
		dist:      dec("600"),
		daily: []repository.DailyMissionRow{
			{Date: "2026-10-15", Realisees: 3, EnRetard: 1},
		},
		expenses: []repository.CategoryTotal{
			{Category: "Carburant", Total: dec("300")},
			{Category: "Péage", Total: dec("100")},
		},
		monthly: []repository.MonthlyDurationRow{
			{Month: "2026-09", AverageMinutes: &avg},
			{Month: "2026-10", AverageMinutes: nil},
		},
	}
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return now }

	out, err := uc.GetAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, out.KPIs.MissionsEnCours)
	assert.Equal(t, 9, out.KPIs.MissionsTerminees)
	assert.Equal(t, 2, out.KPIs.IncidentsSignales)
	assert.True(t, dec("7.5").Equal(out.KPIs.MoyenneConsommation))

	assert.Equal(t, now.Add(-7*24*time.Hour), repo.dailySince)
	require.Len(t, out.MissionsGlobales, 1)
	assert.Equal(t, 3, out.MissionsGlobales[0].MissionsRealisees)
	assert.Equal(t, 1, out.MissionsGlobales[0].MissionsEnRetard)

	require.Len(t, out.ExpenseStatistics, 2)
	assert.True(t, dec("75").Equal(out.ExpenseStatistics[0].Percentage))
	assert.True(t, dec("25").Equal(out.ExpenseStatistics[1].Percentage))

	require.Len(t, out.TempsMoyenMission, 2)
	assert.True(t, dec("125.46").Equal(out.TempsMoyenMission[0].AverageDurationMinutes))
	assert.True(t, out.TempsMoyenMission[1].AverageDurationMinutes.IsZero(), "mes con media NULL se reporta como 0")
}

func TestGetAnalytics_FallaSiUnCalculoFalla(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	repo := &fakeAnalyticsRepo{
		counts:       map[entity.MissionStatus]int{},
		failExpenses: dbErr,
	}

	out, err := NewDashboardUseCase(repo).GetAnalytics(context.Background())

	assert.Nil(t, out, "sin resultado parcial")
	assert.ErrorIs(t, err, dbErr)
}

func TestGetAnalytics_SinDatosDevuelveListasVacias(t *testing.T) {
	repo := &fakeAnalyticsRepo{counts: map[entity.MissionStatus]int{}}

	out, err := NewDashboardUseCase(repo).GetAnalytics(context.Background())
	require.NoError(t, err)

	assert.True(t, out.KPIs.MoyenneConsommation.IsZero())
	assert.NotNil(t, out.MissionsGlobales)
	assert.Empty(t, out.ExpenseStatistics)
	assert.NotNil(t, out.TempsMoyenMission)
}
