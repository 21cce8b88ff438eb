// Package resilience circuit breaker para dependencias HTTP externas.
// No hay reintentos: una llamada fallida se devuelve tal cual al caller.
package resilience

import (
	"time"

	"github.com/sony/gobreaker"
)

// NewCircuitBreaker breaker con los umbrales de la API:
// abre con al menos 5 peticiones y un 60% de fallos en la ventana de 30s,
// pasa a half-open a los 10s y deja pasar 3 peticiones de prueba.
// isFailure decide qué errores cuentan; nil cuenta todos.
func NewCircuitBreaker(name string, isFailure func(error) bool) *gobreaker.CircuitBreaker {
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	}
	if isFailure != nil {
		st.IsSuccessful = func(err error) bool { return err == nil || !isFailure(err) }
	}
	return gobreaker.NewCircuitBreaker(st)
}
