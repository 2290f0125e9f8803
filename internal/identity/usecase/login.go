package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginOutput struct {
	ChallengeToken string
	Email          string
	ExpiresAt      time.Time
}

// Login runs the password step. On success an OTP is mailed and a challenge
// token is returned for LoginOTP.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	user, err := s.authenticate(ctx, AuthenticateInput{Email: in.Email, Password: in.Password})
	if errors.Is(err, entity.ErrWrongPassword) && user != nil {
		s.recordLogin(ctx, user.ID, in.IPAddress, in.UserAgent, entity.LoginStatusFailedPassword)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	attempt := entity.LoginAttempt{UserID: user.ID, Username: user.Username, Address: user.Email}
	if err := attempt.Advance(entity.LoginStatePasswordVerified); err != nil {
		slog.ErrorContext(ctx, "failed to advance login state", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.IssueOTP(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if !s.notifier.SendOTP(ctx, attempt.Address, attempt.Username, code) {
		slog.WarnContext(ctx, "otp delivery failed", "user_id", user.ID, "state", attempt.State.String())
		s.recordLogin(ctx, user.ID, in.IPAddress, in.UserAgent, entity.LoginStatusFailedNotification)
		return nil, entity.ErrNotificationFailure
	}

	token := s.token.Generate()
	tokenDigest, err := s.digest(token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash login challenge", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := s.loginChallengeTTL()
	expiresAt := s.clock.Now().Add(ttl)

	if err := s.repoCache.SaveChallenge(ctx, tokenDigest, LoginChallenge{
		UserID:    attempt.UserID,
		Username:  attempt.Username,
		Email:     attempt.Address,
		ExpiresAt: expiresAt,
	}, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to cache save login challenge", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		ChallengeToken: token,
		Email:          user.Email,
		ExpiresAt:      expiresAt,
	}, nil
}
