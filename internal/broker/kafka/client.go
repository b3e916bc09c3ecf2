package kafka

import (
	"context"
	"errors"

	"image-resizer/internal/broker"
	"image-resizer/internal/config"
	"image-resizer/internal/domain"

	"github.com/wb-go/wbf/retry"
)

// KafkaClient reads bucket notifications and, when a results topic is
// configured, announces every resized object.
type KafkaClient struct {
	producerClient *ProducerClient
	consumerClient *ConsumerClient
}

func NewKafkaClient(cfg config.Kafka, strategy retry.Strategy) *KafkaClient {
	k := &KafkaClient{
		consumerClient: NewConsumerClient(cfg),
	}

	if cfg.ResultsTopic != "" {
		k.producerClient = NewProducerClient(cfg, strategy)
	}

	return k
}

func (k *KafkaClient) Start(ctx context.Context, out chan<- *broker.Message, strategy retry.Strategy) {
	k.consumerClient.Start(ctx, out, strategy)
}

func (k *KafkaClient) Commit(ctx context.Context, msg *broker.Message) error {
	return k.consumerClient.Commit(ctx, msg)
}

// Publish is a no-op without a results topic.
func (k *KafkaClient) Publish(ctx context.Context, ev domain.ResizedEvent) error {
	if k.producerClient == nil {
		return nil
	}
	return k.producerClient.Publish(ctx, ev)
}

func (k *KafkaClient) Close() error {
	var errs []error

	if k.producerClient != nil {
		if err := k.producerClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if k.consumerClient != nil {
		if err := k.consumerClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
