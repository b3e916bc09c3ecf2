package compressor

import (
	"context"

	"image-resizer/internal/domain"
)

type blobStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

type imageResizer interface {
	Process(key string, data []byte) (domain.Result, error)
}

type resultNotifier interface {
	Publish(ctx context.Context, ev domain.ResizedEvent) error
}
