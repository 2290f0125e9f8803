package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

type ResendOTPInput struct {
	ChallengeToken string `validate:"required"`
}

// ResendOTP mails a new code for a pending login challenge.
func (s *Usecase) ResendOTP(ctx context.Context, in ResendOTPInput) error {
	ctx, span := s.startSpan(ctx, "ResendOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	tokenDigest, err := s.digest(in.ChallengeToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash login challenge", "error", err)
		return goerror.NewServer(err)
	}

	ch, err := s.pendingChallenge(ctx, tokenDigest)
	if err != nil {
		return err
	}

	code, err := s.IssueOTP(ctx, ch.UserID)
	if err != nil {
		return err
	}

	if !s.notifier.SendOTP(ctx, ch.Email, ch.Username, code) {
		slog.WarnContext(ctx, "otp delivery failed", "user_id", ch.UserID)
		return entity.ErrNotificationFailure
	}

	return nil
}
