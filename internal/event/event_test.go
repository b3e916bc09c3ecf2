package event

import (
	"testing"

	"image-resizer/internal/domain"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minioNotification = `{
  "EventName": "s3:ObjectCreated:Put",
  "Key": "uploads/my+photo.jpg",
  "Records": [
    {
      "eventVersion": "2.0",
      "eventSource": "minio:s3",
      "awsRegion": "",
      "eventTime": "2024-05-01T10:00:00.000Z",
      "eventName": "s3:ObjectCreated:Put",
      "s3": {
        "s3SchemaVersion": "1.0",
        "configurationId": "Config",
        "bucket": {"name": "uploads", "arn": "arn:aws:s3:::uploads"},
        "object": {"key": "my+photo.jpg", "size": 2048, "eTag": "abc", "contentType": "image/jpeg", "sequencer": "17"}
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	records, err := Parse([]byte(minioNotification))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, domain.EventRecord{
		EventName: "s3:ObjectCreated:Put",
		Bucket:    "uploads",
		Key:       "my+photo.jpg",
		Size:      2048,
	}, records[0])
	assert.True(t, records[0].IsObjectCreated())
}

func TestParse_Errors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		_, err := Parse([]byte(`{"Records": [`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNoRecords)
	})

	t.Run("no records", func(t *testing.T) {
		_, err := Parse([]byte(`{"EventName": "s3:ObjectCreated:Put", "Records": []}`))
		assert.ErrorIs(t, err, domain.ErrNoRecords)
	})

	t.Run("missing records", func(t *testing.T) {
		_, err := Parse([]byte(`{}`))
		assert.ErrorIs(t, err, domain.ErrNoRecords)
	})
}

func TestFromS3Event(t *testing.T) {
	e := events.S3Event{Records: []events.S3EventRecord{
		{
			EventName: "ObjectCreated:Put",
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: "source"},
				Object: events.S3Object{Key: "a%20b.png", Size: 10},
			},
		},
		{
			EventName: "ObjectRemoved:Delete",
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: "source"},
				Object: events.S3Object{Key: "c.png"},
			},
		},
	}}

	records := FromS3Event(e)
	require.Len(t, records, 2)

	assert.Equal(t, "source", records[0].Bucket)
	assert.Equal(t, "a%20b.png", records[0].Key)
	assert.EqualValues(t, 10, records[0].Size)
	assert.True(t, records[0].IsObjectCreated())
	assert.False(t, records[1].IsObjectCreated())

	assert.Empty(t, FromS3Event(events.S3Event{}))
}

func TestIsObjectCreated(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "", want: true},
		{name: "ObjectCreated:Put", want: true},
		{name: "s3:ObjectCreated:CompleteMultipartUpload", want: true},
		{name: "s3:ObjectRemoved:Delete", want: false},
		{name: "s3:ObjectAccessed:Get", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.EventRecord{EventName: tc.name}.IsObjectCreated())
		})
	}
}
