package postgres

import (
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
)

func TestMissionWhere_SinFiltros(t *testing.T) {
	where, args := missionWhere(repository.MissionFilter{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestMissionWhere_Parametrizado(t *testing.T) {
	status := entity.MissionTermine
	ch := int64(7)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := repository.MissionFilter{
		ListParams:  repository.ListParams{Search: "o'brien%"},
		Status:      &status,
		ChauffeurID: &ch,
		DateFrom:    &from,
	}

	where, args := missionWhere(f)

	assert.Contains(t, where, "m.status = $1")
	assert.Contains(t, where, "(m.chauffeur_depart_id = $2 OR m.chauffeur_arrivee_id = $2)")
	assert.Contains(t, where, "m.date_depart >= $3")
	assert.Contains(t, where, "m.mission_code ILIKE $4")
	assert.NotContains(t, where, "o'brien")
	assert.Equal(t, []any{status, ch, from, `%o'brien\%%`}, args)
}
