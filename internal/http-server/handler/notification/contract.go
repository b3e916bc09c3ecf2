package notification

import (
	"context"

	"image-resizer/internal/domain"
)

type compressor interface {
	HandleRecords(ctx context.Context, records []domain.EventRecord) (domain.Response, error)
}
