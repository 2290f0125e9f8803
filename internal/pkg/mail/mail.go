// Package mail sends transactional email (OTP codes, welcome notes).
//
// Two drivers exist: "smtp" delivers through a relay, "log" writes the
// message to the structured log instead, for local runs without a relay.
package mail

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNoRecipients  = errors.New("mail: no recipients")
	ErrNoSender      = errors.New("mail: no sender")
	ErrUnknownDriver = errors.New("mail: unknown driver")
)

type Message struct {
	// From overrides the configured sender address.
	From     string
	To       []string
	Cc       []string
	Bcc      []string
	Subject  string
	TextBody string
	HTMLBody string
}

func (m Message) recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	return append(out, m.Bcc...)
}

type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	// Driver is "smtp" or "log".
	Driver string
	SMTP   SMTPConfig
}

// New returns the driver named by cfg.Driver.
func New(cfg Config) (Mail, error) {
	switch cfg.Driver {
	case "smtp":
		return NewSMTP(cfg.SMTP)
	case "log", "":
		return NewLog(cfg.SMTP.From, cfg.SMTP.FromName), nil
	default:
		return nil, ErrUnknownDriver
	}
}
