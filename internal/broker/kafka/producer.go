package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"image-resizer/internal/config"
	"image-resizer/internal/domain"

	wbkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/retry"
)

type ProducerClient struct {
	producer *wbkafka.Producer
	strategy retry.Strategy
}

func NewProducerClient(cfg config.Kafka, strategy retry.Strategy) *ProducerClient {
	return &ProducerClient{
		producer: wbkafka.NewProducer(cfg.Brokers, cfg.ResultsTopic),
		strategy: strategy,
	}
}

// Publish sends ev keyed by the destination object key.
func (p *ProducerClient) Publish(ctx context.Context, ev domain.ResizedEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal resized event: %w", err)
	}

	if err := p.producer.SendWithRetry(ctx, p.strategy, []byte(ev.Key), value); err != nil {
		return fmt.Errorf("failed to publish resized event: %w", err)
	}

	return nil
}

func (p *ProducerClient) Close() error {
	return p.producer.Close()
}
