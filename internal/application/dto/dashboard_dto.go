package dto

import "github.com/shopspring/decimal"

// DashboardAnalyticsResponse respuesta de GET /admin/dashboard/analytics.
type DashboardAnalyticsResponse struct {
	KPIs              DashboardKPIs          `json:"kpis"`
	MissionsGlobales  []DailyMissionStat     `json:"missionsGlobales"`
	ExpenseStatistics []ExpenseCategoryShare `json:"expenseStatistics"`
	TempsMoyenMission []MonthlyDurationStat  `json:"tempsMoyenMission"`
}

// DashboardKPIs indicadores principales.
type DashboardKPIs struct {
	MissionsEnCours     int             `json:"missionsEnCours"`
	MissionsTerminees   int             `json:"missionsTerminees"`
	IncidentsSignales   int             `json:"incidentsSignales"`
	MoyenneConsommation decimal.Decimal `json:"moyenneConsommation"` // L/100 km
}

// DailyMissionStat misiones terminadas de un día.
type DailyMissionStat struct {
	Date              string `json:"date"`
	MissionsRealisees int    `json:"missionsRealisees"`
	MissionsEnRetard  int    `json:"missionsEnRetard"`
}

// ExpenseCategoryShare porcentaje del gasto total de una categoría.
type ExpenseCategoryShare struct {
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
}

// MonthlyDurationStat duración media de misión por mes.
type MonthlyDurationStat struct {
	Month                  string          `json:"month"`
	AverageDurationMinutes decimal.Decimal `json:"averageDurationMinutes"`
}
