package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cargopilot-api/internal/infrastructure/observability"
)

// RequestLogger access log con zerolog: método, ruta, status y latencia.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		settle(c, c.Next())
		status := c.Response().StatusCode()

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http")
		return nil
	}
}

// MetricsMiddleware duración y contador por ruta registrada (no por path concreto).
func MetricsMiddleware(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		settle(c, c.Next())
		route := c.Route().Path
		if route == "" || route == "/" {
			route = c.Path()
		}
		m.ObserveRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return nil
	}
}

// settle escribe la respuesta de error en el momento para que el status sea el definitivo.
func settle(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
