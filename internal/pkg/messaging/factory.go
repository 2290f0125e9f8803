package messaging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DriverNATS   = "nats"
	DriverKafka  = "kafka"
	DriverMemory = "memory"
)

var errUnknownDriver = errors.New("messaging: unknown driver")

type Options struct {
	NATS  NATSConfig
	Kafka KafkaConfig
}

// New builds the client for driver.
func New(driver string, opts Options) (Messaging, error) {
	switch strings.TrimSpace(driver) {
	case DriverNATS:
		return NewNATS(opts.NATS)
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverMemory, "":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, driver)
	}
}
