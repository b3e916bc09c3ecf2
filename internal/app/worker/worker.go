package worker

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"image-resizer/internal/app"
	kafka_impl "image-resizer/internal/broker/kafka"
	"image-resizer/internal/config"
	"image-resizer/internal/usecase/compressor"
	"image-resizer/internal/usecase/processor"
	"image-resizer/internal/worker"

	"github.com/wb-go/wbf/zlog"
)

type Worker struct {
	cfg    *config.Config
	logger *zlog.Zerolog
	worker *worker.Worker
}

func NewWorker(cfg *config.Config, logger *zlog.Zerolog) (*Worker, error) {
	store, err := app.NewBlobStore(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store: %w", err)
	}

	resizer := processor.NewImageResizer(cfg.Resize.MaxPixels)
	client := kafka_impl.NewKafkaClient(cfg.Kafka, cfg.DefaultRetryStrategy())
	comp := compressor.NewCompressor(store, resizer, cfg.TargetBucket, logger).WithNotifier(client)

	logger.Info().
		Strs("brokers", cfg.Kafka.Brokers).
		Str("topic", cfg.Kafka.Topic).
		Str("group", cfg.Kafka.GroupID).
		Str("results_topic", cfg.Kafka.ResultsTopic).
		Str("backend", cfg.Storage.Backend).
		Str("target_bucket", cfg.TargetBucket).
		Int("concurrency", cfg.Worker.Concurrency).
		Msg("Worker configuration")

	return &Worker{
		cfg:    cfg,
		logger: logger,
		worker: worker.NewWorker(client, comp, cfg.Worker.Concurrency, cfg.DefaultRetryStrategy(), logger),
	}, nil
}

func (w *Worker) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return w.worker.Run(ctx)
}
