package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatus_MismoEstadoEsNoOp(t *testing.T) {
	llegada := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m := &Mission{Status: MissionTermine, DateArriveeReelle: &llegada}

	changed := m.ApplyStatus(MissionTermine, time.Now())

	assert.False(t, changed)
	require.NotNil(t, m.DateArriveeReelle)
	assert.Equal(t, llegada, *m.DateArriveeReelle)
}

func TestApplyStatus_TermineSellaLlegada(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	m := &Mission{Status: MissionEnCours}

	require.True(t, m.ApplyStatus(MissionTermine, now))
	require.NotNil(t, m.DateArriveeReelle)
	assert.Equal(t, now, *m.DateArriveeReelle)
	assert.Equal(t, now, m.UpdatedAt)
}

func TestApplyStatus_SalirDeTermineLimpiaLlegada(t *testing.T) {
	llegada := time.Now()
	for _, s := range []MissionStatus{MissionProgramme, MissionEnCours, MissionAnnule} {
		m := &Mission{Status: MissionTermine, DateArriveeReelle: &llegada}
		require.True(t, m.ApplyStatus(s, time.Now()))
		assert.Nil(t, m.DateArriveeReelle, "estado %s", s)
	}
}

func TestMissionStatus_Valid(t *testing.T) {
	assert.True(t, MissionEnCours.Valid())
	assert.False(t, MissionStatus("Livre").Valid())
}
