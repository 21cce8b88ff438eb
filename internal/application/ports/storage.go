package ports

import (
	"context"
	"time"
)

// Buckets de almacenamiento.
const (
	BucketProfilePictures    = "profile-pictures"
	BucketDocumentsChauffeur = "documents-chauffeurs"
	BucketVehiculesPhotos    = "vehicules-photos"
)

// FileUpload archivo recibido en un formulario multipart.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// BlobStore almacenamiento de objetos por bucket.
type BlobStore interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error
	PublicURL(bucket, path string) string
	SignedURL(ctx context.Context, bucket, path string, expiresIn time.Duration) (string, error)
}
