package compressor

import (
	"context"
	"errors"
	"fmt"

	"image-resizer/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"
)

// Compressor turns a bucket notification into a resized object in the
// target bucket. The blob store is shared across invocations; nothing else
// outlives a call.
type Compressor struct {
	store        blobStore
	resizer      imageResizer
	targetBucket string
	notifier     resultNotifier
	logger       *zlog.Zerolog
}

func NewCompressor(store blobStore, resizer imageResizer, targetBucket string, logger *zlog.Zerolog) *Compressor {
	return &Compressor{
		store:        store,
		resizer:      resizer,
		targetBucket: targetBucket,
		logger:       logger,
	}
}

// WithNotifier makes the compressor announce every uploaded object. A failed
// announcement is logged and does not fail the invocation.
func (c *Compressor) WithNotifier(n resultNotifier) *Compressor {
	c.notifier = n
	return c
}

// HandleRecords processes the first record of a notification.
func (c *Compressor) HandleRecords(ctx context.Context, records []domain.EventRecord) (domain.Response, error) {
	if len(records) == 0 {
		c.logger.Error().Err(domain.ErrNoRecords).Msg("Event received without records")
		return domain.Response{}, &domain.ProcessingError{Err: domain.ErrNoRecords}
	}

	if len(records) > 1 {
		c.logger.Warn().Int("records", len(records)).Msg("Only the first record of the event is processed")
	}

	return c.Handle(ctx, records[0])
}

func (c *Compressor) Handle(ctx context.Context, record domain.EventRecord) (domain.Response, error) {
	if c.targetBucket == "" {
		c.logger.Error().Err(domain.ErrConfiguration).Msg("Target bucket is not configured")
		return domain.Response{}, domain.ErrConfiguration
	}

	log := c.logger.With().
		Str("invocation_id", uuid.New().String()).
		Str("bucket", record.Bucket).
		Str("target_bucket", c.targetBucket).
		Logger()

	src, err := domain.NewSourceObject(record.Bucket, record.Key)
	if err != nil {
		return c.fail(&log, src, err)
	}

	log.Info().Str("key", src.Key).Msg("Starting compression for object")

	if domain.IsResizedKey(src.Key) {
		log.Info().Str("key", src.Key).Msg("Object is already resized, skipping")
		return domain.SuccessResponse(), nil
	}

	data, err := c.store.Get(ctx, src.Bucket, src.Key)
	if err != nil {
		return c.fail(&log, src, fmt.Errorf("failed to fetch object: %w", err))
	}

	log.Debug().Str("key", src.Key).Int("size", len(data)).Msg("Image data fetched")

	result, err := c.resizer.Process(src.Key, data)
	if err != nil {
		return c.fail(&log, src, err)
	}

	if result.Outcome == domain.OutcomeSkipped {
		log.Info().Str("key", src.Key).Msg("Object is already resized, skipping")
		return domain.SuccessResponse(), nil
	}

	out := result.Output
	if err := c.store.Put(ctx, c.targetBucket, out.Key, out.Data, out.ContentType); err != nil {
		return c.fail(&log, src, fmt.Errorf("failed to upload resized image: %w", err))
	}

	log.Info().
		Str("key", src.Key).
		Str("dest_key", out.Key).
		Str("source_format", string(out.SourceFormat)).
		Str("format", string(out.Format)).
		Int("width", out.Width).
		Int("height", out.Height).
		Int("size", len(out.Data)).
		Msg("Resized image uploaded")

	if c.notifier != nil {
		ev := domain.ResizedEvent{
			SourceBucket: src.Bucket,
			SourceKey:    src.Key,
			Bucket:       c.targetBucket,
			Key:          out.Key,
			Format:       out.Format,
			ContentType:  out.ContentType,
			Width:        out.Width,
			Height:       out.Height,
			Size:         len(out.Data),
		}
		if err := c.notifier.Publish(ctx, ev); err != nil {
			log.Warn().Err(err).Str("dest_key", out.Key).Msg("Failed to publish resized event")
		}
	}

	return domain.SuccessResponse(), nil
}

// fail logs err and hands it back. The two distinguished kinds pass through
// as they are, everything else is wrapped with the object it concerns.
func (c *Compressor) fail(log *zerolog.Logger, src domain.SourceObject, err error) (domain.Response, error) {
	switch {
	case errors.Is(err, domain.ErrUnidentifiedFormat):
		log.Error().Err(err).Str("key", src.Key).Msg("Unable to identify image format")
		return domain.Response{}, err
	case errors.Is(err, domain.ErrResourceExhaustion):
		log.Error().Err(err).Str("key", src.Key).Msg("Resource limit hit while processing image")
		return domain.Response{}, err
	default:
		log.Error().Err(err).Str("key", src.Key).Msg("Error processing object")
		return domain.Response{}, src.Fail(err)
	}
}
