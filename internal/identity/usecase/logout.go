package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/jwt"
)

// Logout denylists the caller's session token until it would expire.
func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil || clm.ID == "" {
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	if clm.ExpiresAt == nil {
		slog.WarnContext(ctx, "session token has no expiry", "user_id", clm.UserID)
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	ttl := clm.ExpiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}

	if err := s.repoCache.RevokeSession(ctx, clm.ID, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to cache revoke session", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
