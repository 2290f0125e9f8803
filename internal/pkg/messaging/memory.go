package messaging

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"
)

// Memory delivers messages inside one process. Each consumer group receives
// every message once; group members compete for it.
type Memory struct {
	mu     sync.RWMutex
	groups map[string]map[string]chan memoryMessage
	closed bool
}

func NewMemory() *Memory {
	return &Memory{groups: map[string]map[string]chan memoryMessage{}}
}

const memoryBuffer = 256

func (m *Memory) Publish(ctx context.Context, topic string, msg OutgoingMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}

	mm := memoryMessage{topic: topic, key: msg.Key, body: msg.Body, headers: maps.Clone(msg.Headers), at: time.Now()}

	// A full group queue drops the message so a stalled consumer never blocks publishers.
	for group, ch := range m.groups[topic] {
		select {
		case ch <- mm:
		default:
			slog.WarnContext(ctx, "memory queue full, message dropped", "topic", topic, "group", group)
		}
	}
	return nil
}

func (m *Memory) queue(topic, group string) (chan memoryMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, false
	}
	if m.groups[topic] == nil {
		m.groups[topic] = map[string]chan memoryMessage{}
	}
	ch, ok := m.groups[topic][group]
	if !ok {
		ch = make(chan memoryMessage, memoryBuffer)
		m.groups[topic][group] = ch
	}
	return ch, true
}

func (m *Memory) Consume(ctx context.Context, topic string, handler Handler, opts ...ConsumeOption) error {
	if topic == "" {
		return ErrTopicRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}
	co := newConsumeOptions(opts...)

	ch, ok := m.queue(topic, co.group)
	if !ok {
		return ErrClosed
	}

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case msg := <-ch:
					if err := safeHandle(ctx, DriverMemory, handler, msg); err != nil {
						logHandlerError(ctx, DriverMemory, topic, err)
					}
				}
			}
		})
	}
	wg.Wait()

	return ctx.Err()
}

// Close stops accepting publishes. Messages still queued are dropped.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

type memoryMessage struct {
	topic   string
	key     []byte
	body    []byte
	headers map[string]string
	at      time.Time
}

func (m memoryMessage) Topic() string            { return m.topic }
func (m memoryMessage) Key() []byte              { return m.key }
func (m memoryMessage) Body() []byte             { return m.body }
func (m memoryMessage) Header(key string) string { return m.headers[key] }
func (m memoryMessage) Timestamp() time.Time     { return m.at }

func logHandlerError(ctx context.Context, driver, topic string, err error) {
	slog.ErrorContext(ctx, "message handler failed", "driver", driver, "topic", topic, "error", err)
}
