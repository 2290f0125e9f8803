package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/secureauth/internal/audit/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/idempotency"
)

type ConsumeUserLoginInput struct {
	EventID   string    `validate:"required"`
	UserID    int64     `validate:"required,gt=0"`
	IPAddress string    `validate:"max=45"`
	UserAgent string
	Status    string    `validate:"required,oneof=success failed_password failed_otp failed_notification"`
	At        time.Time `validate:"required"`
}

// ConsumeUserLogin stores one login history row per event id.
func (s *Usecase) ConsumeUserLogin(ctx context.Context, in ConsumeUserLoginInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserLogin")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "event_id", in.EventID, "error", err)
		return nil
	}

	err := s.idempotency.Exec(ctx, "audit:user_login:"+in.EventID, func(ctx context.Context) error {
		return s.repoDB.CreateLoginHistory(ctx, entity.LoginHistory{
			ID:        s.uid.Generate(),
			UserID:    in.UserID,
			LoginTime: in.At,
			IPAddress: in.IPAddress,
			UserAgent: in.UserAgent,
			Status:    in.Status,
		})
	}, idempotency.WithRetryFailed())
	if idempotency.Duplicate(err) {
		slog.InfoContext(ctx, "login history already recorded", "event_id", in.EventID)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create login history", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
