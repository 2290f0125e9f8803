package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

var ErrNATSURLRequired = errors.New("messaging: nats url is required")

type NATSConfig struct {
	URL     string
	Name    string
	Options []nats.Option
}

// NATS publishes core NATS messages and consumes through queue
// subscriptions. Core NATS has no redelivery, so a failed handler only logs.
type NATS struct {
	conn *nats.Conn
}

func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	opts := append([]nats.Option{nats.Name(cfg.Name)}, cfg.Options...)
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

func (n *NATS) Publish(ctx context.Context, topic string, msg OutgoingMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return ErrTopicRequired
	}
	if n.conn.IsClosed() {
		return ErrClosed
	}

	nm := nats.NewMsg(topic)
	nm.Data = msg.Body
	for k, v := range msg.Headers {
		nm.Header.Set(k, v)
	}

	if err := n.conn.PublishMsg(nm); err != nil {
		return fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.Flush(); err != nil {
		return fmt.Errorf("messaging: nats flush: %w", err)
	}
	return nil
}

func (n *NATS) Consume(ctx context.Context, topic string, handler Handler, opts ...ConsumeOption) error {
	if topic == "" {
		return ErrTopicRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}

	co := newConsumeOptions(opts...)
	msgCh := make(chan *nats.Msg, co.concurrency)

	sub, err := n.conn.QueueSubscribe(topic, co.group, func(m *nats.Msg) {
		select {
		case msgCh <- m:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for m := range msgCh {
				wrapped := natsMessage{msg: m, receivedAt: time.Now()}
				if err := safeHandle(ctx, DriverNATS, handler, wrapped); err != nil {
					logHandlerError(ctx, DriverNATS, topic, err)
				}
			}
		})
	}

	<-ctx.Done()
	drainErr := sub.Drain()
	close(msgCh)
	wg.Wait()

	return errors.Join(ctx.Err(), drainErr)
}

// Close flushes pending publishes and closes the connection.
func (n *NATS) Close() error {
	if n.conn.IsClosed() {
		return nil
	}
	err := n.conn.Drain()
	n.conn.Close()
	return err
}

type natsMessage struct {
	msg        *nats.Msg
	receivedAt time.Time
}

func (m natsMessage) Topic() string            { return m.msg.Subject }
func (m natsMessage) Key() []byte              { return nil }
func (m natsMessage) Body() []byte             { return m.msg.Data }
func (m natsMessage) Header(key string) string { return m.msg.Header.Get(key) }
func (m natsMessage) Timestamp() time.Time     { return m.receivedAt }
