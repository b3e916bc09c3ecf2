// Package event converts bucket notifications into domain records. Lambda
// delivers events.S3Event directly; MinIO publishes the same record layout
// wrapped in {"EventName", "Key", "Records"} to Kafka and webhook targets.
package event

import (
	"encoding/json"
	"fmt"

	"image-resizer/internal/domain"

	"github.com/aws/aws-lambda-go/events"
)

type notification struct {
	EventName string                 `json:"EventName"`
	Key       string                 `json:"Key"`
	Records   []events.S3EventRecord `json:"Records"`
}

func Parse(payload []byte) ([]domain.EventRecord, error) {
	var n notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	if len(n.Records) == 0 {
		return nil, domain.ErrNoRecords
	}

	return FromS3Event(events.S3Event{Records: n.Records}), nil
}

func FromS3Event(e events.S3Event) []domain.EventRecord {
	records := make([]domain.EventRecord, 0, len(e.Records))
	for _, r := range e.Records {
		records = append(records, domain.EventRecord{
			EventName: r.EventName,
			Bucket:    r.S3.Bucket.Name,
			Key:       r.S3.Object.Key,
			Size:      r.S3.Object.Size,
		})
	}
	return records
}
