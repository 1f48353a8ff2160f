package service

import (
	"context"
	"io"
)

// BlobStorage defines the interface for attachment blob persistence.
// Keys are opaque to callers; the bucket backend (GCS, S3, local file) is
// chosen through configuration.
type BlobStorage interface {
	// Write stores the blob under key with the given content type.
	Write(ctx context.Context, key string, contentType string, r io.Reader) error

	// Read opens the blob stored under key.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}
