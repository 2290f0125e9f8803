package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

type LoginOTPInput struct {
	ChallengeToken string `validate:"required"`
	Code           string `validate:"required"`
	IPAddress      string
	UserAgent      string
}

type LoginOTPOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	UserID      int64
	Username    string
	Email       string
}

// LoginOTP completes a login challenge with the mailed code and grants a
// session token.
func (s *Usecase) LoginOTP(ctx context.Context, in LoginOTPInput) (*LoginOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	tokenDigest, err := s.digest(in.ChallengeToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash login challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	ch, err := s.pendingChallenge(ctx, tokenDigest)
	if err != nil {
		return nil, err
	}

	attempt := entity.LoginAttempt{
		State:    entity.LoginStatePasswordVerified,
		UserID:   ch.UserID,
		Username: ch.Username,
		Address:  ch.Email,
	}

	ok, err := s.VerifyOTP(ctx, ch.UserID, in.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.recordLogin(ctx, ch.UserID, in.IPAddress, in.UserAgent, entity.LoginStatusFailedOTP)
		return nil, entity.ErrOTPInvalidOrExpired
	}

	if err := attempt.Advance(entity.LoginStateOTPVerified); err != nil {
		slog.ErrorContext(ctx, "failed to advance login state", "user_id", ch.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoCache.DeleteChallenge(ctx, tokenDigest); err != nil {
		slog.ErrorContext(ctx, "failed to cache delete login challenge", "user_id", ch.UserID, "error", err)
	}

	if err := s.repoDB.UpdateLastLogin(ctx, ch.UserID, s.clock.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to repo update last login", "user_id", ch.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(attempt.UserID, attempt.Username, attempt.Address)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", ch.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.recordLogin(ctx, ch.UserID, in.IPAddress, in.UserAgent, entity.LoginStatusSuccess)

	return &LoginOTPOutput{
		AccessToken: token.Value,
		ExpiresAt:   token.ExpiresAt,
		UserID:      attempt.UserID,
		Username:    attempt.Username,
		Email:       attempt.Address,
	}, nil
}

func (s *Usecase) pendingChallenge(ctx context.Context, tokenDigest string) (*LoginChallenge, error) {
	ch, err := s.repoCache.GetChallenge(ctx, tokenDigest)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "login challenge not found or expired")
		return nil, entity.ErrOTPInvalidOrExpired
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to cache get login challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	return ch, nil
}
