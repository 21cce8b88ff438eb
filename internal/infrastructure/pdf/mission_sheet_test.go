package pdf

import (
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DevuelvePDF(t *testing.T) {
	dist := decimal.RequireFromString("1250.5")
	dep := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	g := NewMissionSheetGenerator()

	out, err := g.Generate(ports.MissionSheet{
		Mission: &entity.MissionDetail{
			Mission: entity.Mission{
				MissionCode: "M-042", MissionType: entity.MissionChargement, Status: entity.MissionEnCours,
				DateDepart: &dep, HeureDepartEstimee: "08:30", DistanceEstimeeKm: &dist,
				LieuDepart: "Lyon", LieuArrivee: "Paris",
			},
			ClientName:          "ACME",
			ChauffeurDepartName: "Paul Durand",
			VehiculeDepartImmat: "AB-123-CD",
		},
		Client: &entity.Client{CompanyName: "ACME", ContactName: "Marie"},
	})

	require.NoError(t, err)
	assert.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerate_SinMision(t *testing.T) {
	_, err := NewMissionSheetGenerator().Generate(ports.MissionSheet{})

	assert.Error(t, err)
}

func TestQuantity_FormatoFrances(t *testing.T) {
	g := NewMissionSheetGenerator()
	d := decimal.RequireFromString("12.5")

	assert.Equal(t, "12,50 km", g.quantity(&d, "km"))
	assert.Equal(t, "—", g.quantity(nil, "km"))
}

func TestDateTime(t *testing.T) {
	d := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	withHour := time.Date(2024, 3, 10, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "10/03/2024 08:30", dateTime(&d, "08:30"))
	assert.Equal(t, "10/03/2024", dateTime(&d, ""))
	assert.Equal(t, "10/03/2024 14:05", dateTime(&withHour, ""))
	assert.Equal(t, "—", dateTime(nil, ""))
}
