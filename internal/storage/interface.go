package storage

import (
	"context"
	"io"
	"time"
)

// PosterStore defines the interface for poster image storage.
type PosterStore interface {
	// PutPoster uploads a poster image under the given key.
	PutPoster(ctx context.Context, key string, body io.Reader, contentType string) error
	// PosterURL generates a pre-signed URL for downloading a poster.
	PosterURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements PosterStore interface
var _ PosterStore = (*S3Client)(nil)
