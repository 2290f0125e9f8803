package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/hash"
	"github.com/shandysiswandi/secureauth/internal/pkg/jwt"
)

type ChangePasswordInput struct {
	UserID          int64  `validate:"required,gt=0"`
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,password"`
}

// ChangePassword replaces the password of UserID after checking the current
// one. The new hash always gets a fresh salt.
func (s *Usecase) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	ctx, span := s.startSpan(ctx, "ChangePassword")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", in.UserID)
		return entity.ErrUserNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if !s.password.Verify(user.PasswordHash, in.CurrentPassword) {
		slog.WarnContext(ctx, "current password mismatch", "user_id", user.ID)
		return entity.ErrWrongCurrentPassword
	}

	if s.cfg.GetBool("modules.identity.password.enforce_strength") {
		if st := hash.CheckStrength(in.NewPassword); !st.Valid {
			return goerror.NewInvalidInput(nil, "new_password", st.Reason)
		}
	}

	newHash, err := s.password.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	err = s.repoDB.UpdatePassword(ctx, user.ID, string(newHash))
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", user.ID)
		return entity.ErrUserNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type PasswordChangeInput struct {
	CurrentPassword string
	NewPassword     string
}

// PasswordChange is ChangePassword for the authenticated caller.
func (s *Usecase) PasswordChange(ctx context.Context, in PasswordChangeInput) error {
	ctx, span := s.startSpan(ctx, "PasswordChange")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	return s.ChangePassword(ctx, ChangePasswordInput{
		UserID:          clm.UserID,
		CurrentPassword: in.CurrentPassword,
		NewPassword:     in.NewPassword,
	})
}
