package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
)

type AuthenticateInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Authenticate checks an email and password pair. It never creates a session.
func (s *Usecase) Authenticate(ctx context.Context, in AuthenticateInput) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "Authenticate")
	defer span.End()

	user, err := s.authenticate(ctx, in)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// authenticate returns the user alongside entity.ErrWrongPassword so the
// caller can record the failed attempt.
func (s *Usecase) authenticate(ctx context.Context, in AuthenticateInput) (*entity.User, error) {
	in.Email = normalizeEmail(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, entity.ErrUnknownEmail
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !user.IsActive {
		slog.WarnContext(ctx, "user account is disabled", "user_id", user.ID)
		return nil, entity.ErrAccountDisabled
	}

	if !s.password.Verify(user.PasswordHash, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return user, entity.ErrWrongPassword
	}

	if s.password.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user, in.Password)
	}

	return user, nil
}

func (s *Usecase) rehash(ctx context.Context, user *entity.User, password string) {
	hashed, err := s.password.Hash(password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to rehash password", "user_id", user.ID, "error", err)
		return
	}

	if err := s.repoDB.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update rehashed password", "user_id", user.ID, "error", err)
		return
	}

	user.PasswordHash = string(hashed)
	slog.InfoContext(ctx, "password hash upgraded", "user_id", user.ID)
}
