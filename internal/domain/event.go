package domain

import (
	"encoding/json"
	"net/http"
	"strings"
)

// EventRecord is one bucket notification record. Key is kept exactly as
// delivered, still percent-encoded.
type EventRecord struct {
	EventName string
	Bucket    string `validate:"required"`
	Key       string `validate:"required"`
	Size      int64  `validate:"gte=0"`
}

// IsObjectCreated matches both the AWS ("ObjectCreated:Put") and the MinIO
// ("s3:ObjectCreated:Put") spellings. An empty name is treated as created.
func (r EventRecord) IsObjectCreated() bool {
	if r.EventName == "" {
		return true
	}
	return strings.Contains(r.EventName, "ObjectCreated")
}

const SuccessBody = "Compression Complete!"

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// SuccessResponse is returned for every completed invocation, skipped or not.
// The body is the JSON encoding of SuccessBody.
func SuccessResponse() Response {
	body, _ := json.Marshal(SuccessBody)
	return Response{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}
}

// ResizedEvent announces an object written to the target bucket.
type ResizedEvent struct {
	SourceBucket string      `json:"source_bucket"`
	SourceKey    string      `json:"source_key"`
	Bucket       string      `json:"bucket"`
	Key          string      `json:"key"`
	Format       ImageFormat `json:"format"`
	ContentType  string      `json:"content_type"`
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	Size         int         `json:"size"`
}
