package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

// VerifyOTP consumes a matching code. It returns true at most once per
// stored code; a malformed code is rejected without touching the store.
func (s *Usecase) VerifyOTP(ctx context.Context, userID int64, code string) (bool, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if !s.otp.Valid(code) {
		slog.WarnContext(ctx, "otp has invalid format", "user_id", userID)
		return false, nil
	}

	codeDigest, err := s.digest(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash otp", "user_id", userID, "error", err)
		return false, goerror.NewServer(err)
	}

	now := s.clock.Now()
	otp, err := s.repoDB.GetValidOTP(ctx, userID, codeDigest, now)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp not found or expired", "user_id", userID)
		return false, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get valid otp", "user_id", userID, "error", err)
		return false, goerror.NewServer(err)
	}

	ok, err := s.repoDB.MarkOTPUsed(ctx, otp.ID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark otp used", "user_id", userID, "otp_id", otp.ID, "error", err)
		return false, goerror.NewServer(err)
	}

	if !ok {
		slog.WarnContext(ctx, "otp already consumed", "user_id", userID, "otp_id", otp.ID)
	}

	return ok, nil
}
