// Package analytics contiene el agregador del dashboard de administración.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const dailyWindow = 7 * 24 * time.Hour

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera la instantánea de analítica del dashboard.
//
// Cuatro cálculos independientes en paralelo con composición fail-fast:
// si uno falla se cancela el contexto de los demás y no hay respuesta parcial.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetAnalytics construye la respuesta de GET /admin/dashboard/analytics.
//
//  1. KPIs                 → conteos + consumo medio
//  2. Misiones por día     → últimos 7 días
//  3. Gastos por categoría → porcentajes
//  4. Duración media       → por mes
func (uc *DashboardUseCase) GetAnalytics(ctx context.Context) (*dto.DashboardAnalyticsResponse, error) {
	var out dto.DashboardAnalyticsResponse
	now := uc.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kpis, err := uc.kpis(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: kpis: %w", err)
		}
		out.KPIs = kpis
		return nil
	})
	g.Go(func() error {
		daily, err := uc.dailyStats(gctx, now)
		if err != nil {
			return fmt.Errorf("dashboard: misiones diarias: %w", err)
		}
		out.MissionsGlobales = daily
		return nil
	})
	g.Go(func() error {
		shares, err := uc.expenseShares(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: gastos: %w", err)
		}
		out.ExpenseStatistics = shares
		return nil
	})
	g.Go(func() error {
		monthly, err := uc.monthlyDurations(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: duración media: %w", err)
		}
		out.TempsMoyenMission = monthly
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// kpis lanza sus cuatro consultas también en paralelo.
func (uc *DashboardUseCase) kpis(ctx context.Context) (dto.DashboardKPIs, error) {
	var (
		k              dto.DashboardKPIs
		fuel, distance decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		k.MissionsEnCours, err = uc.analyticsRepo.CountMissionsByStatus(gctx, entity.MissionEnCours)
		return err
	})
	g.Go(func() (err error) {
		k.MissionsTerminees, err = uc.analyticsRepo.CountMissionsByStatus(gctx, entity.MissionTermine)
		return err
	})
	g.Go(func() (err error) {
		k.IncidentsSignales, err = uc.analyticsRepo.CountIncidents(gctx)
		return err
	})
	g.Go(func() (err error) {
		fuel, distance, err = uc.analyticsRepo.FuelTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.DashboardKPIs{}, err
	}
	k.MoyenneConsommation = FuelRate(fuel, distance)
	return k, nil
}

func (uc *DashboardUseCase) dailyStats(ctx context.Context, now time.Time) ([]dto.DailyMissionStat, error) {
	rows, err := uc.analyticsRepo.DailyMissionStats(ctx, now.Add(-dailyWindow))
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyMissionStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyMissionStat{
			Date:              r.Date,
			MissionsRealisees: r.Realisees,
			MissionsEnRetard:  r.EnRetard,
		})
	}
	return out, nil
}

func (uc *DashboardUseCase) expenseShares(ctx context.Context) ([]dto.ExpenseCategoryShare, error) {
	totals, err := uc.analyticsRepo.ExpenseTotalsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return ExpenseShares(totals), nil
}

func (uc *DashboardUseCase) monthlyDurations(ctx context.Context) ([]dto.MonthlyDurationStat, error) {
	rows, err := uc.analyticsRepo.MonthlyAverageDuration(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyDurationStat, 0, len(rows))
	for _, r := range rows {
		avg := decimal.Zero
		if r.AverageMinutes != nil {
			avg = r.AverageMinutes.Round(2)
		}
		out = append(out, dto.MonthlyDurationStat{Month: r.Month, AverageDurationMinutes: avg})
	}
	return out, nil
}

// FuelRate consumo medio en L/100 km redondeado a 2 decimales; 0 si alguna suma es cero.
func FuelRate(fuel, distance decimal.Decimal) decimal.Decimal {
	if fuel.IsZero() || distance.IsZero() {
		return decimal.Zero
	}
	return fuel.Div(distance).Mul(hundred).Round(2)
}

// ExpenseShares porcentaje de cada categoría sobre el total, redondeado a 2 decimales.
// Lista vacía si el total es cero.
func ExpenseShares(totals []repository.CategoryTotal) []dto.ExpenseCategoryShare {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	out := make([]dto.ExpenseCategoryShare, 0, len(totals))
	if sum.IsZero() {
		return out
	}
	for _, t := range totals {
		out = append(out, dto.ExpenseCategoryShare{
			Category:   t.Category,
			Percentage: t.Total.Div(sum).Mul(hundred).Round(2),
		})
	}
	return out
}
