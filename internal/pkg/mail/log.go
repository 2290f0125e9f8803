package mail

import (
	"context"
	"log/slog"
)

// Log writes messages to slog instead of delivering them. Intended for local
// and demo runs, where the OTP is read from the service log.
type Log struct {
	from     string
	fromName string
}

func NewLog(from, fromName string) *Log {
	return &Log{from: from, fromName: fromName}
}

func (l *Log) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.recipients()) == 0 {
		return ErrNoRecipients
	}

	from := msg.From
	if from == "" {
		from = l.from
	}

	slog.InfoContext(ctx, "mail not delivered, log driver active",
		"from", from,
		"from_name", l.fromName,
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.TextBody,
	)
	return nil
}

func (l *Log) Close() error { return nil }
