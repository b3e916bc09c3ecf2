package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"image-resizer/internal/broker"
	"image-resizer/internal/domain"
	"image-resizer/internal/event"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

var ErrConsumerStopped = errors.New("consumer stopped delivering messages")

type notificationHandler interface {
	HandleRecords(ctx context.Context, records []domain.EventRecord) (domain.Response, error)
}

type Worker struct {
	consumer    broker.Consumer
	handler     notificationHandler
	retries     retry.Strategy
	logger      *zlog.Zerolog
	concurrency int
	wg          sync.WaitGroup
}

func NewWorker(consumer broker.Consumer, handler notificationHandler, concurrency int, retries retry.Strategy, logger *zlog.Zerolog) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Worker{
		consumer:    consumer,
		handler:     handler,
		retries:     retries,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Run consumes notifications until ctx is canceled, then waits for in-flight
// messages to finish. If the consumer stops on its own, Run returns
// ErrConsumerStopped once the remaining messages are handled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info().Int("concurrency", w.concurrency).Msg("Starting worker")

	messages := make(chan *broker.Message, w.concurrency*2)
	w.consumer.Start(ctx, messages, w.retries)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go func(id int) {
			defer w.wg.Done()
			w.processWorker(ctx, id, messages)
		}(i)
	}

	drained := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(drained)
	}()

	w.logger.Info().Msg("Worker started successfully")

	var err error
	select {
	case <-ctx.Done():
		w.logger.Info().Msg("Shutting down worker gracefully...")
		<-drained
	case <-drained:
		if ctx.Err() == nil {
			err = ErrConsumerStopped
			w.logger.Error().Err(err).Msg("Message channel closed, stopping worker")
		}
	}

	if cerr := w.consumer.Close(); cerr != nil {
		w.logger.Error().Err(cerr).Msg("Failed to close consumer")
	}

	if err != nil {
		return err
	}

	w.logger.Info().Msg("Worker stopped gracefully")
	return nil
}

func (w *Worker) processWorker(ctx context.Context, id int, messages <-chan *broker.Message) {
	w.logger.Debug().Int("worker_id", id).Msg("Worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Int("worker_id", id).Msg("Worker stopping")
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			startTime := time.Now()
			if err := w.safeProcessMessage(ctx, id, msg); err != nil {
				w.logger.Error().
					Err(err).
					Int("worker_id", id).
					Int64("offset", msg.Offset).
					Msg("Failed to process message")
				continue
			}

			if err := w.consumer.Commit(ctx, msg); err != nil {
				w.logger.Error().
					Err(err).
					Int("worker_id", id).
					Int64("offset", msg.Offset).
					Msg("Failed to commit message after successful processing")
				continue
			}

			w.logger.Debug().
				Int("worker_id", id).
				Int64("offset", msg.Offset).
				Dur("duration", time.Since(startTime)).
				Msg("Message processed and committed")
		}
	}
}

func (w *Worker) safeProcessMessage(ctx context.Context, workerID int, msg *broker.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error().
				Int("worker_id", workerID).
				Interface("panic", r).
				Int64("offset", msg.Offset).
				Msg("Panic recovered while processing message")
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.processMessage(ctx, msg)
}

func (w *Worker) processMessage(ctx context.Context, msg *broker.Message) error {
	records, err := event.Parse(msg.Value)
	if err != nil {
		w.logger.Error().Err(err).Str("message_key", string(msg.Key)).Int64("offset", msg.Offset).Msg("Failed to parse notification")
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	if !records[0].IsObjectCreated() {
		w.logger.Debug().Str("event", records[0].EventName).Str("key", records[0].Key).Msg("Ignoring non-create event")
		return nil
	}

	if _, err := w.handler.HandleRecords(ctx, records); err != nil {
		return err
	}

	return nil
}
