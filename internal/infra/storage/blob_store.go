// Package storage implements attachment blob persistence on top of
// gocloud.dev buckets, so the same code serves GCS, S3 and local files.
package storage

import (
	"context"
	"io"
	"log/slog"

	"fleet/config"
	"fleet/internal/domain/lifecycle"
	"fleet/internal/domain/service"
	"fleet/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
}

// New opens the attachment bucket named by config and closes it on shutdown.
func New(params Params) (service.BlobStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// Write stores the blob under key with the given content type.
func (s *blobStore) Write(ctx context.Context, key string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write blob")
	}

	return errors.Wrap(w.Close(), "failed to finalize blob")
}

// Read opens the blob stored under key.
func (s *blobStore) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob reader")
	}

	return r, nil
}

// Delete removes the blob stored under key.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete blob")
}
