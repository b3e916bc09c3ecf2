package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"image-resizer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"CONFIG_PATH", "TARGET_BUCKET", "LOG_LEVEL", "RESIZE_MAX_PIXELS",
	"STORAGE_BACKEND", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_USE_SSL", "MINIO_REGION",
	"AWS_REGION", "S3_ENDPOINT", "S3_USE_PATH_STYLE",
	"KAFKA_BROKERS", "KAFKA_NOTIFICATIONS_TOPIC", "KAFKA_GROUP_ID", "KAFKA_RESULTS_TOPIC", "WORKER_CONCURRENCY",
	"HTTP_ADDR", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT",
	"RETRY_ATTEMPTS", "RETRY_DELAY", "RETRY_BACKOFF",
}

// clearEnv unsets every variable the config reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestMustLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TARGET_BUCKET", "resized-images")

	cfg, err := MustLoad()
	require.NoError(t, err)

	assert.Equal(t, "resized-images", cfg.TargetBucket)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.EqualValues(t, domain.DefaultMaxPixels, cfg.Resize.MaxPixels)
	assert.Equal(t, BackendMinIO, cfg.Storage.Backend)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "bucket-notifications", cfg.Kafka.Topic)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 1, cfg.Retry.Attempts)
}

func TestMustLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TARGET_BUCKET", "out")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("WORKER_CONCURRENCY", "8")
	t.Setenv("RETRY_ATTEMPTS", "3")

	cfg, err := MustLoad()
	require.NoError(t, err)

	assert.Equal(t, BackendS3, cfg.Storage.Backend)
	assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 8, cfg.Worker.Concurrency)
	assert.Equal(t, 3, cfg.DefaultRetryStrategy().Attempts)
}

func TestMustLoad_MissingTargetBucket(t *testing.T) {
	clearEnv(t)

	_, err := MustLoad()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestMustLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
target_bucket: thumbnails
storage:
  backend: minio
  minio:
    endpoint: minio:9000
    access_key: admin
worker:
  concurrency: 2
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := MustLoad()
	require.NoError(t, err)

	assert.Equal(t, "thumbnails", cfg.TargetBucket)
	assert.Equal(t, "minio:9000", cfg.Storage.MinIO.Endpoint)
	assert.Equal(t, "admin", cfg.Storage.MinIO.AccessKey)
	assert.Equal(t, 2, cfg.Worker.Concurrency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			TargetBucket: "out",
			Storage:      Storage{Backend: BackendMinIO},
			Worker:       Worker{Concurrency: 1},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Backend = "gcs"
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero concurrency", func(t *testing.T) {
		cfg := valid()
		cfg.Worker.Concurrency = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestDefaultRetryStrategy(t *testing.T) {
	cfg := Config{Retry: Retry{Attempts: 0, Delay: time.Second, Backoff: 1.5}}

	s := cfg.DefaultRetryStrategy()
	assert.Equal(t, 1, s.Attempts)
	assert.Equal(t, time.Second, s.Delay)
	assert.InDelta(t, 1.5, s.Backoff, 0.0001)
}
