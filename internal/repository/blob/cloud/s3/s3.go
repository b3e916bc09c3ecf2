package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"image-resizer/internal/config"
	"image-resizer/internal/repository/blob"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type FileRepository struct {
	client *s3.Client
}

// NewClient loads the default AWS credential chain. Endpoint and path-style
// addressing are only set for S3-compatible stores.
func NewClient(ctx context.Context, cfg config.S3) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

func NewS3Repository(client *s3.Client) *FileRepository {
	return &FileRepository{client: client}
}

func (r *FileRepository) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, mapError(err))
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for %s/%s: %w", bucket, key, err)
	}

	return data, nil
}

func (r *FileRepository) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucket, key, mapError(err))
	}

	return nil
}

func mapError(err error) error {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return fmt.Errorf("%w: %v", blob.ErrObjectNotFound, err)
	}

	var noBucket *types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return fmt.Errorf("%w: %v", blob.ErrBucketNotFound, err)
	}

	return fmt.Errorf("%w: %v", blob.ErrStorageError, err)
}
