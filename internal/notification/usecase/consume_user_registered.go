package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/secureauth/internal/pkg/idempotency"
)

type ConsumeUserRegisteredInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
}

// ConsumeUserRegistered sends the welcome mail once per user. Invalid
// payloads are dropped; a failed send is returned for redelivery.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "user_id", in.UserID, "error", err)
		return nil
	}

	key := "notification:welcome:" + strconv.FormatInt(in.UserID, 10)
	err := s.idempotency.Exec(ctx, key, func(ctx context.Context) error {
		return s.repoMail.SendWelcome(ctx, in.Email, in.Username)
	}, idempotency.WithRetryFailed())
	if idempotency.Duplicate(err) {
		slog.InfoContext(ctx, "welcome mail already handled", "user_id", in.UserID)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to send welcome mail", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
