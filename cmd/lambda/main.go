package main

import (
	"context"

	"image-resizer/internal/app"
	"image-resizer/internal/config"
	"image-resizer/internal/domain"
	"image-resizer/internal/event"
	s3_repo "image-resizer/internal/repository/blob/cloud/s3"
	"image-resizer/internal/usecase/compressor"
	"image-resizer/internal/usecase/processor"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()

	cfg, err := config.MustLoad()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to load config")
	}
	app.SetLogLevel(cfg.LogLevel)

	client, err := s3_repo.NewClient(context.Background(), cfg.Storage.S3)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to create S3 client")
	}

	comp := compressor.NewCompressor(
		s3_repo.NewS3Repository(client),
		processor.NewImageResizer(cfg.Resize.MaxPixels),
		cfg.TargetBucket,
		&zlog.Logger,
	)

	lambda.Start(func(ctx context.Context, e events.S3Event) (domain.Response, error) {
		return comp.HandleRecords(ctx, event.FromS3Event(e))
	})
}
