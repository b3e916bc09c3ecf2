package app

import (
	"context"
	"fmt"

	"image-resizer/internal/config"
	minio_repo "image-resizer/internal/repository/blob/cloud/minio"
	s3_repo "image-resizer/internal/repository/blob/cloud/s3"
)

type BlobStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// NewBlobStore creates the configured store once per process; the returned
// client is safe to share between invocations.
func NewBlobStore(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendS3:
		client, err := s3_repo.NewClient(ctx, cfg.Storage.S3)
		if err != nil {
			return nil, err
		}
		return s3_repo.NewS3Repository(client), nil
	case config.BackendMinIO:
		client, err := minio_repo.NewClient(cfg.Storage.MinIO)
		if err != nil {
			return nil, err
		}
		return minio_repo.NewMinIORepository(client, cfg.DefaultRetryStrategy()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
