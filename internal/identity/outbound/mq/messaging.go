package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/secureauth/internal/identity/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/messaging"
	"github.com/shandysiswandi/secureauth/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishUserRegistered(ctx context.Context, msg usecase.UserRegisteredEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishUserRegistered")
	defer span.End()

	return m.publish(ctx, span, event.UserRegisteredDestination, msg.UserID, event.UserRegisteredMessage{
		UserID:       msg.UserID,
		Username:     msg.Username,
		Email:        msg.Email,
		RegisteredAt: msg.RegisteredAt,
	})
}

func (m *Messaging) PublishUserLogin(ctx context.Context, msg usecase.UserLoginEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishUserLogin")
	defer span.End()

	return m.publish(ctx, span, event.UserLoginDestination, msg.UserID, event.UserLoginMessage{
		EventID:   msg.EventID,
		UserID:    msg.UserID,
		IPAddress: msg.IPAddress,
		UserAgent: msg.UserAgent,
		Status:    msg.Status.String(),
		At:        msg.At,
	})
}

// publish keys messages by user id so one user's events stay ordered.
func (m *Messaging) publish(ctx context.Context, span trace.Span, topic string, userID int64, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Publish(ctx, topic, messaging.OutgoingMessage{
		Key:     []byte(strconv.FormatInt(userID, 10)),
		Body:    body,
		Headers: map[string]string{keyOfCorrelationID: instrument.GetCorrelationID(ctx)},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
