// Package messaging is the event bus between modules. Identity publishes
// user_registered and user_login; notification and audit consume them.
//
// Drivers: "nats" (queue subscriptions), "kafka" (consumer groups) and
// "memory" (in-process, for single-binary runs and tests). Delivery is at
// least once, so handlers must be idempotent.
package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrTopicRequired   = errors.New("messaging: topic is required")
	ErrHandlerRequired = errors.New("messaging: handler is required")
	ErrGroupRequired   = errors.New("messaging: consumer group is required")
	ErrClosed          = errors.New("messaging: client closed")
)

type Messaging interface {
	io.Closer
	Publisher
	Consumer
}

type Publisher interface {
	Publish(ctx context.Context, topic string, msg OutgoingMessage) error
}

type Consumer interface {
	// Consume blocks, dispatching messages to handler until ctx is done.
	Consume(ctx context.Context, topic string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes one message. A nil return acknowledges it; an error
// leaves it for redelivery where the driver supports that.
type Handler func(ctx context.Context, msg Message) error

type OutgoingMessage struct {
	// Key orders messages within a Kafka partition.
	Key     []byte
	Body    []byte
	Headers map[string]string
}

type Message interface {
	Topic() string
	Key() []byte
	Body() []byte
	Header(key string) string
	Timestamp() time.Time
}
