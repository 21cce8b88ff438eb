// Package tasks agrupa los trabajos que corren fuera del flujo de peticiones.
package tasks

import (
	"context"
	"math"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

const day = 24 * time.Hour

// ExpirationCheck avisa a los administradores de los documentos de conductores
// que vencen dentro de la ventana configurada.
type ExpirationCheck struct {
	chauffeurs repository.ChauffeurRepository
	notifier   ports.Notifier
	window     time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewExpirationCheck construye la tarea; windowDays <= 0 usa 30 días.
func NewExpirationCheck(chauffeurs repository.ChauffeurRepository, notifier ports.Notifier, windowDays int, log zerolog.Logger) *ExpirationCheck {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &ExpirationCheck{
		chauffeurs: chauffeurs,
		notifier:   notifier,
		window:     time.Duration(windowDays) * day,
		log:        log,
		now:        time.Now,
	}
}

// Run emite un document_expiring_soon por documento en [now, now+ventana], en orden y sin deduplicar.
// Devuelve el número de avisos enviados.
func (t *ExpirationCheck) Run(ctx context.Context) (int, error) {
	now := t.now()
	docs, err := t.chauffeurs.ListExpiringDocuments(ctx, now, now.Add(t.window))
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, d := range docs {
		// Un DATE de hoy es medianoche: ya pasó si now es posterior.
		if d.ExpirationDate == nil || d.ExpirationDate.Before(now) {
			continue
		}
		t.notifier.SendToRoom(ports.RoomAdmins, ports.EventDocumentExpiringSoon, ports.DocumentExpiringSoonPayload{
			ChauffeurName:  d.ChauffeurName,
			DocumentType:   d.DocumentType,
			ExpirationDate: d.ExpirationDate.UTC().Format("2006-01-02"),
			DaysRemaining:  DaysRemaining(now, *d.ExpirationDate),
		})
		sent++
	}
	t.log.Info().Int("documents", sent).Msg("verificación de vencimientos completada")
	return sent, nil
}

// DaysRemaining días enteros hasta exp, redondeando hacia arriba.
func DaysRemaining(now, exp time.Time) int {
	return int(math.Ceil(float64(exp.Sub(now)) / float64(day)))
}
