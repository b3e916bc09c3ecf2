package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"image-resizer/internal/config"
	"image-resizer/internal/repository/blob"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wb-go/wbf/retry"
)

type FileRepository struct {
	client  *minio.Client
	retries retry.Strategy
}

func NewClient(cfg config.MinIO) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return client, nil
}

func NewMinIORepository(client *minio.Client, retries retry.Strategy) *FileRepository {
	return &FileRepository{
		client:  client,
		retries: retries,
	}
}

func (r *FileRepository) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	var data []byte

	err := retry.Do(func() error {
		obj, err := r.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return mapError(err)
		}
		defer obj.Close()

		data, err = io.ReadAll(obj)
		if err != nil {
			return mapError(err)
		}
		return nil
	}, r.retries)
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
	}

	return data, nil
}

func (r *FileRepository) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	err := retry.Do(func() error {
		_, err := r.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return mapError(err)
		}
		return nil
	}, r.retries)
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucket, key, err)
	}

	return nil
}

// mapError translates minio error codes into repository errors. The object
// reader only reports a missing key on the first read, hence the check there too.
func mapError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey":
		return fmt.Errorf("%w: %v", blob.ErrObjectNotFound, err)
	case "NoSuchBucket":
		return fmt.Errorf("%w: %v", blob.ErrBucketNotFound, err)
	default:
		return fmt.Errorf("%w: %v", blob.ErrStorageError, err)
	}
}
