package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job trabajo programable.
type Job interface {
	Run(ctx context.Context) (int, error)
}

// Scheduler dispara los trabajos según expresiones cron estándar (5 campos).
type Scheduler struct {
	cron    *cron.Cron
	log     zerolog.Logger
	timeout time.Duration
	onRun   func(job string, err error)
}

// NewScheduler construye el planificador en la zona horaria local del servidor.
func NewScheduler(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.Local)),
		log:     log,
		timeout: 5 * time.Minute,
	}
}

// Add registra job bajo spec. Un fallo del trabajo se registra en el log, no detiene el planificador.
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		start := time.Now()
		n, err := job.Run(ctx)
		if s.onRun != nil {
			s.onRun(name, err)
		}
		if err != nil {
			s.log.Error().Err(err).Str("job", name).Msg("tarea programada fallida")
			return
		}
		s.log.Debug().Str("job", name).Int("items", n).Dur("took", time.Since(start)).Msg("tarea programada")
	})
	if err != nil {
		return fmt.Errorf("programar %s (%q): %w", name, spec, err)
	}
	return nil
}

// OnRun registra un observador del resultado de cada ejecución. Llamar antes de Start.
func (s *Scheduler) OnRun(fn func(job string, err error)) {
	s.onRun = fn
}

// Start arranca el planificador en segundo plano.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop detiene el planificador y espera a los trabajos en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("planificador detenido con trabajos en curso")
	}
}
