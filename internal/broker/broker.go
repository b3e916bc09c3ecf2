package broker

import (
	"context"

	"github.com/wb-go/wbf/retry"
)

type Message struct {
	Key       []byte
	Value     []byte
	Topic     string
	Partition int
	Offset    int64
}

// Consumer delivers messages into out. Implementations close out when they
// stop delivering for any reason other than ctx being canceled.
type Consumer interface {
	Start(ctx context.Context, out chan<- *Message, strategy retry.Strategy)
	Commit(ctx context.Context, msg *Message) error
	Close() error
}
