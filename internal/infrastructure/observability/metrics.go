// Package observability métricas Prometheus de la API.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics métricas de la aplicación sobre un registry propio.
// Los métodos aceptan receptor nil para que los componentes funcionen sin métricas (tests).
type Metrics struct {
	// Registry lo expone /metrics.
	Registry *prometheus.Registry

	requestDuration      *prometheus.HistogramVec
	requestsTotal        *prometheus.CounterVec
	wsConnections        prometheus.Gauge
	notificationsSent    *prometheus.CounterVec
	notificationsDropped *prometheus.CounterVec
	externalErrors       *prometheus.CounterVec
	taskRuns             *prometheus.CounterVec
}

// NewMetrics crea un registry dedicado; llamarlo varias veces no provoca colectores duplicados.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cargopilot_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP por ruta.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cargopilot_http_requests_total",
				Help: "Peticiones HTTP procesadas por ruta y código.",
			},
			[]string{"method", "route", "status"},
		),
		wsConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "cargopilot_ws_connections",
				Help: "Conexiones WebSocket abiertas.",
			},
		),
		notificationsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cargopilot_notifications_sent_total",
				Help: "Frames entregados a buffers de clientes por evento.",
			},
			[]string{"event"},
		),
		notificationsDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cargopilot_notifications_dropped_total",
				Help: "Frames descartados por buffer lleno.",
			},
			[]string{"event"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cargopilot_external_errors_total",
				Help: "Errores de servicios externos.",
			},
			[]string{"service"},
		),
		taskRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cargopilot_task_runs_total",
				Help: "Ejecuciones de tareas programadas por resultado.",
			},
			[]string{"task", "result"},
		),
	}
}

// ObserveRequest registra duración y código de una petición HTTP.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) WSConnected() {
	if m != nil {
		m.wsConnections.Inc()
	}
}

func (m *Metrics) WSDisconnected() {
	if m != nil {
		m.wsConnections.Dec()
	}
}

// NotificationSent un frame encolado para un cliente.
func (m *Metrics) NotificationSent(event string) {
	if m != nil {
		m.notificationsSent.WithLabelValues(event).Inc()
	}
}

// NotificationDropped un frame perdido por cliente lento.
func (m *Metrics) NotificationDropped(event string) {
	if m != nil {
		m.notificationsDropped.WithLabelValues(event).Inc()
	}
}

func (m *Metrics) IncrExternalError(service string) {
	if m != nil {
		m.externalErrors.WithLabelValues(service).Inc()
	}
}

// TaskRun cuenta una ejecución de tarea; result es "ok" o "error".
func (m *Metrics) TaskRun(task string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.taskRuns.WithLabelValues(task, result).Inc()
}
