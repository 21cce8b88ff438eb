// Package supabase cliente HTTP de Supabase: Auth admin (GoTrue) y Storage.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/observability"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/resilience"
	"github.com/jhoicas/cargopilot-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Client llamadas autenticadas al proyecto Supabase.
// Todas pasan por un circuit breaker; solo los 5xx y errores de red cuentan como fallo.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	anonKey        string
	serviceRoleKey string
	cb             *gobreaker.CircuitBreaker
	metrics        *observability.Metrics
	log            zerolog.Logger
}

// NewClient construye el cliente. metrics puede ser nil.
func NewClient(cfg config.SupabaseConfig, metrics *observability.Metrics, log zerolog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		anonKey:        cfg.AnonKey,
		serviceRoleKey: cfg.ServiceRoleKey,
		cb:             resilience.NewCircuitBreaker("supabase", countsAsFailure),
		metrics:        metrics,
		log:            log,
	}
}

// apiError respuesta no-2xx de Supabase.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase %d: %s", e.Status, e.Message)
}

func countsAsFailure(err error) bool {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.Status >= 500
	}
	return true
}

func statusOf(err error) int {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

type request struct {
	method      string
	path        string
	anon        bool // usa la anon key en lugar de la service role
	json        any
	raw         []byte
	contentType string
	headers     map[string]string
}

// do ejecuta la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	body, err := c.cb.Execute(func() (any, error) {
		return c.roundTrip(ctx, r)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return domain.ErrUpstreamOpen
		}
		if countsAsFailure(err) {
			c.metrics.IncrExternalError("supabase")
		}
		return err
	}
	if out == nil {
		return nil
	}
	b, _ := body.([]byte)
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", domain.ErrUpstream, r.method, r.path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, r request) ([]byte, error) {
	var (
		reader      io.Reader
		contentType = r.contentType
	)
	switch {
	case r.json != nil:
		b, err := json.Marshal(r.json)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
		contentType = "application/json"
	case r.raw != nil:
		reader = bytes.NewReader(r.raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, reader)
	if err != nil {
		return nil, err
	}
	key := c.serviceRoleKey
	if r.anon {
		key = c.anonKey
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", r.method).Str("path", r.path).Msg("supabase: request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ae := parseError(resp.StatusCode, body)
		c.log.Warn().Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).
			Str("code", ae.Code).Msg("supabase: non-2xx response")
		return nil, ae
	}
	c.log.Debug().Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).Msg("supabase: request OK")
	return body, nil
}

// parseError entiende los formatos de error de GoTrue y de Storage.
func parseError(status int, body []byte) *apiError {
	var payload struct {
		ErrorCode        string `json:"error_code"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(body, &payload)

	ae := &apiError{Status: status, Code: payload.ErrorCode}
	for _, m := range []string{payload.Msg, payload.Message, payload.ErrorDescription, payload.Error} {
		if m != "" {
			ae.Message = m
			break
		}
	}
	if ae.Code == "" && payload.Error != "" && payload.Error != ae.Message {
		ae.Code = payload.Error
	}
	if ae.Message == "" {
		ae.Message = strings.TrimSpace(string(body))
	}
	return ae
}

// upstream envuelve errores de negocio no mapeados como fallo del proveedor.
func upstream(op string, err error) error {
	if errors.Is(err, domain.ErrUpstreamOpen) || errors.Is(err, domain.ErrUpstream) {
		return fmt.Errorf("supabase %s: %w", op, err)
	}
	return fmt.Errorf("supabase %s: %w: %v", op, domain.ErrUpstream, err)
}
