package kafka

import (
	"context"

	"image-resizer/internal/broker"
	"image-resizer/internal/config"

	kafka "github.com/segmentio/kafka-go"
	wbkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/retry"
)

type ConsumerClient struct {
	consumer *wbkafka.Consumer
}

func NewConsumerClient(cfg config.Kafka) *ConsumerClient {
	return &ConsumerClient{
		consumer: wbkafka.NewConsumer(cfg.Brokers, cfg.Topic, cfg.GroupID),
	}
}

// Start forwards fetched messages to out until ctx is done. out is closed
// once the underlying consumer gives up fetching.
func (c *ConsumerClient) Start(ctx context.Context, out chan<- *broker.Message, strategy retry.Strategy) {
	raw := make(chan kafka.Message, cap(out))

	c.consumer.StartConsuming(ctx, raw, strategy)

	go forward(ctx, raw, out)
}

func forward(ctx context.Context, raw <-chan kafka.Message, out chan<- *broker.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-raw:
			if !ok {
				close(out)
				return
			}
			select {
			case out <- toMessage(msg):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (c *ConsumerClient) Commit(ctx context.Context, msg *broker.Message) error {
	return c.consumer.Commit(ctx, kafka.Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	})
}

func (c *ConsumerClient) Close() error {
	return c.consumer.Close()
}

func toMessage(msg kafka.Message) *broker.Message {
	return &broker.Message{
		Key:       msg.Key,
		Value:     msg.Value,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
	}
}
