package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

// IssueOTP stores a fresh code for userID and returns the plaintext for
// delivery. Only a digest of the code is persisted.
func (s *Usecase) IssueOTP(ctx context.Context, userID int64) (string, error) {
	ctx, span := s.startSpan(ctx, "IssueOTP")
	defer span.End()

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp", "user_id", userID, "error", err)
		return "", goerror.NewServer(err)
	}

	codeDigest, err := s.digest(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash otp", "user_id", userID, "error", err)
		return "", goerror.NewServer(err)
	}

	now := s.clock.Now()
	revoke := s.cfg.GetBool("modules.identity.otp.revoke_previous_on_issue")

	if _, err := s.repoDB.SaveOTP(ctx, entity.OTP{
		ID:        s.uid.Generate(),
		UserID:    userID,
		Code:      codeDigest,
		CreatedAt: now,
		ExpiresAt: now.Add(s.otpTTL()),
	}, revoke); err != nil {
		slog.ErrorContext(ctx, "failed to repo save otp", "user_id", userID, "error", err)
		return "", goerror.NewServer(err)
	}

	return code, nil
}
