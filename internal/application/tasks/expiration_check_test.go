package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/apptest"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newCheck(t *testing.T, expirations ...time.Time) (*ExpirationCheck, *apptest.Notifier) {
	t.Helper()
	repo := apptest.NewChauffeurRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Chauffeur{ID: 1, ChauffeurCode: "CH-1", FullName: "Paul Durand"}))
	for _, exp := range expirations {
		e := exp
		require.NoError(t, repo.AddDocument(ctx, &entity.DocumentChauffeur{ChauffeurID: 1, DocumentType: "Permis", ExpirationDate: &e}))
	}
	require.NoError(t, repo.AddDocument(ctx, &entity.DocumentChauffeur{ChauffeurID: 1, DocumentType: "Sans date"}))

	notifier := &apptest.Notifier{}
	check := NewExpirationCheck(repo, notifier, 30, zerolog.Nop())
	check.now = func() time.Time { return now }
	return check, notifier
}

func TestRun_DiezDias(t *testing.T) {
	check, notifier := newCheck(t, now.Add(10*day))

	n, err := check.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	require.Len(t, notifier.Events, 1)
	ev := notifier.Events[0]
	assert.Equal(t, ports.RoomAdmins, ev.Room)
	assert.Equal(t, ports.EventDocumentExpiringSoon, ev.Event)
	assert.Equal(t, ports.DocumentExpiringSoonPayload{
		ChauffeurName:  "Paul Durand",
		DocumentType:   "Permis",
		ExpirationDate: "2024-06-11",
		DaysRemaining:  10,
	}, ev.Payload)
}

func TestRun_FueraDeVentana(t *testing.T) {
	check, notifier := newCheck(t, now.Add(31*day), now.Add(-time.Hour))

	n, err := check.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, notifier.Events)
}

// dayRepo filtra por día calendario, como una columna DATE comparada contra from truncado.
type dayRepo struct {
	*apptest.ChauffeurRepo
}

func (r dayRepo) ListExpiringDocuments(ctx context.Context, from, to time.Time) ([]*entity.ExpiringDocument, error) {
	return r.ChauffeurRepo.ListExpiringDocuments(ctx, from.Truncate(day), to)
}

func TestRun_VenceHoyAntesDeAhora(t *testing.T) {
	check, notifier := newCheck(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), now.Add(2*day))
	check.chauffeurs = dayRepo{check.chauffeurs.(*apptest.ChauffeurRepo)}

	n, err := check.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, notifier.Events, 1)
	assert.Equal(t, 2, notifier.Events[0].Payload.(ports.DocumentExpiringSoonPayload).DaysRemaining)
}

func TestRun_FechaEnUTC(t *testing.T) {
	paris := time.FixedZone("CEST", 2*60*60)
	check, notifier := newCheck(t, time.Date(2024, 6, 11, 1, 0, 0, 0, paris))

	_, err := check.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, notifier.Events, 1)
	assert.Equal(t, "2024-06-10", notifier.Events[0].Payload.(ports.DocumentExpiringSoonPayload).ExpirationDate)
}

func TestRun_LimitesIncluidos(t *testing.T) {
	check, notifier := newCheck(t, now, now.Add(30*day))

	n, err := check.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, notifier.Count(ports.EventDocumentExpiringSoon))
}

func TestRun_SinDeduplicar(t *testing.T) {
	check, notifier := newCheck(t, now.Add(5*day))

	_, err := check.Run(context.Background())
	require.NoError(t, err)
	_, err = check.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, notifier.Count(ports.EventDocumentExpiringSoon))
}

func TestDaysRemaining_RedondeaHaciaArriba(t *testing.T) {
	assert.Equal(t, 1, DaysRemaining(now, now.Add(time.Hour)))
	assert.Equal(t, 0, DaysRemaining(now, now))
	assert.Equal(t, 2, DaysRemaining(now, now.Add(day+time.Minute)))
}

type failingJob struct{ calls int }

func (j *failingJob) Run(context.Context) (int, error) {
	j.calls++
	return 0, errors.New("db caída")
}

func TestScheduler_ExpresionInvalida(t *testing.T) {
	s := NewScheduler(zerolog.Nop())

	err := s.Add("expiration", "cada día", &failingJob{})

	assert.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	require.NoError(t, s.Add("expiration", "0 9 * * *", &failingJob{}))

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestScheduler_OnRunRecibeResultado(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	results := make(chan error, 4)
	s.OnRun(func(job string, err error) {
		assert.Equal(t, "expiration", job)
		results <- err
	})
	job := &failingJob{}
	require.NoError(t, s.Add("expiration", "@every 1s", job))

	s.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)
	}()

	select {
	case err := <-results:
		assert.EqualError(t, err, "db caída")
	case <-time.After(3 * time.Second):
		t.Fatal("la tarea no se ejecutó")
	}
}
