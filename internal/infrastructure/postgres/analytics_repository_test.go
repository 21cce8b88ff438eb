package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type missionSeed struct {
	code      string
	status    entity.MissionStatus
	created   time.Time
	depart    time.Time
	estimee   time.Time
	reelle    *time.Time
	distance  any
	carburant any
}

func insertMission(t *testing.T, pool *pgxpool.Pool, f fleetFixture, m missionSeed) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO missions (mission_code, mission_type, status, client_id, chauffeur_depart_id, vehicule_depart_id,
			date_depart, date_arrivee_estimee, date_arrivee_reelle, distance_reelle_km, carburant_consomme_l, created_at)
		VALUES ($1, 'Chargement', $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.code, string(m.status), f.ClientID, f.ChauffeurID, f.VehiculeID,
		m.depart, m.estimee, m.reelle, m.distance, m.carburant, m.created)
	require.NoError(t, err)
}

func at(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// seedDashboard: tres terminadas el 10/06 (una llega 2 h tarde), una el 11/06, una en curso y una de mayo.
func seedDashboard(t *testing.T) *AnalyticsRepo {
	pool := newTestDB(t)
	f := seedFleet(t, pool)

	for _, m := range []missionSeed{
		{"M-A", entity.MissionTermine, at(10, 8), at(10, 8), at(10, 10), ptr(at(10, 10)), dec(100), dec(30)},
		{"M-B", entity.MissionTermine, at(10, 10), at(10, 10), at(10, 11), ptr(at(10, 13)), dec(200), dec(50)},
		{"M-C", entity.MissionTermine, at(10, 14), at(10, 14), at(10, 15), ptr(at(10, 15)), dec(0), dec(10)},
		{"M-D", entity.MissionTermine, at(11, 9), at(11, 9), at(11, 10), ptr(at(11, 10)), nil, dec(5)},
		{"M-E", entity.MissionEnCours, at(10, 9), at(10, 9), at(10, 12), nil, nil, nil},
		{"M-F", entity.MissionTermine, at(10, 8).AddDate(0, 0, -21), at(10, 8).AddDate(0, 0, -21),
			at(10, 12).AddDate(0, 0, -21), ptr(at(10, 12).AddDate(0, 0, -21)), dec(50), dec(20)},
	} {
		insertMission(t, pool, f, m)
	}
	return NewAnalyticsRepository(pool)
}

func TestAnalyticsRepo_DailyMissionStats(t *testing.T) {
	repo := seedDashboard(t)

	rows, err := repo.DailyMissionStats(context.Background(), at(1, 0))

	require.NoError(t, err)
	assert.Equal(t, []repository.DailyMissionRow{
		{Date: "2024-06-10", Realisees: 3, EnRetard: 1},
		{Date: "2024-06-11", Realisees: 1, EnRetard: 0},
	}, rows)
}

func TestAnalyticsRepo_FuelTotalsIgnoraDistanciaNula(t *testing.T) {
	repo := seedDashboard(t)

	fuel, distance, err := repo.FuelTotals(context.Background())

	require.NoError(t, err)
	assert.True(t, fuel.Equal(decimal.NewFromInt(100)), "fuel=%s", fuel)
	assert.True(t, distance.Equal(decimal.NewFromInt(350)), "distance=%s", distance)
}

func TestAnalyticsRepo_MonthlyAverageDuration(t *testing.T) {
	repo := seedDashboard(t)

	rows, err := repo.MonthlyAverageDuration(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05", rows[0].Month)
	require.NotNil(t, rows[0].AverageMinutes)
	assert.True(t, rows[0].AverageMinutes.Equal(decimal.NewFromInt(240)), "mayo=%s", rows[0].AverageMinutes)
	assert.Equal(t, "2024-06", rows[1].Month)
	require.NotNil(t, rows[1].AverageMinutes)
	assert.True(t, rows[1].AverageMinutes.Equal(decimal.NewFromInt(105)), "junio=%s", rows[1].AverageMinutes)
}

func TestAnalyticsRepo_CountMissionsByStatus(t *testing.T) {
	repo := seedDashboard(t)

	n, err := repo.CountMissionsByStatus(context.Background(), entity.MissionTermine)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
