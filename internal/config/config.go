package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"image-resizer/internal/domain"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/wb-go/wbf/retry"
)

const (
	BackendMinIO = "minio"
	BackendS3    = "s3"
)

type Config struct {
	TargetBucket string  `yaml:"target_bucket" env:"TARGET_BUCKET"`
	LogLevel     string  `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Resize       Resize  `yaml:"resize"`
	Storage      Storage `yaml:"storage"`
	Kafka        Kafka   `yaml:"kafka"`
	Worker       Worker  `yaml:"worker"`
	Server       Server  `yaml:"server"`
	Retry        Retry   `yaml:"retry"`
}

type Resize struct {
	MaxPixels int64 `yaml:"max_pixels" env:"RESIZE_MAX_PIXELS" env-default:"178956970"`
}

type Storage struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"minio"`
	MinIO   MinIO  `yaml:"minio"`
	S3      S3     `yaml:"s3"`
}

type MinIO struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
	Region    string `yaml:"region" env:"MINIO_REGION"`
}

type S3 struct {
	Region       string `yaml:"region" env:"AWS_REGION"`
	Endpoint     string `yaml:"endpoint" env:"S3_ENDPOINT"`
	UsePathStyle bool   `yaml:"use_path_style" env:"S3_USE_PATH_STYLE" env-default:"false"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_NOTIFICATIONS_TOPIC" env-default:"bucket-notifications"`
	GroupID string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"image-resizer"`
	// Empty disables result events.
	ResultsTopic string `yaml:"results_topic" env:"KAFKA_RESULTS_TOPIC"`
}

type Worker struct {
	Concurrency int `yaml:"concurrency" env:"WORKER_CONCURRENCY" env-default:"4"`
}

type Server struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type Retry struct {
	Attempts int           `yaml:"attempts" env:"RETRY_ATTEMPTS" env-default:"1"`
	Delay    time.Duration `yaml:"delay" env:"RETRY_DELAY" env-default:"200ms"`
	Backoff  float64       `yaml:"backoff" env:"RETRY_BACKOFF" env-default:"2"`
}

// MustLoad reads an optional .env file, then the YAML file named by
// CONFIG_PATH if set, then the environment.
func MustLoad() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TargetBucket == "" {
		return fmt.Errorf("%w: TARGET_BUCKET is required", domain.ErrConfiguration)
	}

	switch c.Storage.Backend {
	case BackendMinIO, BackendS3:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Worker.Concurrency <= 0 {
		return fmt.Errorf("worker concurrency must be positive, got %d", c.Worker.Concurrency)
	}

	return nil
}

// DefaultRetryStrategy never returns fewer than one attempt.
func (c *Config) DefaultRetryStrategy() retry.Strategy {
	attempts := c.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}

	return retry.Strategy{
		Attempts: attempts,
		Delay:    c.Retry.Delay,
		Backoff:  c.Retry.Backoff,
	}
}
