package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
)

var _ ports.BlobStore = (*Client)(nil)

var errEmptySignedURL = errors.New("respuesta sin signedURL")

func objectKey(bucket, path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return url.PathEscape(bucket) + "/" + strings.Join(parts, "/")
}

// Upload sube (o reemplaza) un objeto.
func (c *Client) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/storage/v1/object/" + objectKey(bucket, path),
		raw:         data,
		contentType: contentType,
		headers:     map[string]string{"x-upsert": "true"},
	}, nil)
	if err != nil {
		return upstream("upload", err)
	}
	return nil
}

// PublicURL URL pública; solo tiene sentido en buckets públicos.
func (c *Client) PublicURL(bucket, path string) string {
	return c.baseURL + "/storage/v1/object/public/" + objectKey(bucket, path)
}

// SignedURL URL temporal de lectura para buckets privados.
func (c *Client) SignedURL(ctx context.Context, bucket, path string, expiresIn time.Duration) (string, error) {
	var resp struct {
		SignedURL string `json:"signedURL"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/storage/v1/object/sign/" + objectKey(bucket, path),
		json:   map[string]int{"expiresIn": int(expiresIn.Seconds())},
	}, &resp)
	if err != nil {
		if s := statusOf(err); s == http.StatusNotFound || s == http.StatusBadRequest {
			return "", domain.ErrNotFound
		}
		return "", upstream("sign url", err)
	}
	if resp.SignedURL == "" {
		return "", upstream("sign url", errEmptySignedURL)
	}
	return c.baseURL + "/storage/v1" + resp.SignedURL, nil
}
