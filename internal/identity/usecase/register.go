package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/hash"
)

type RegisterInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,password"`
	Phone    string `validate:"omitempty,phone"`
}

type RegisterOutput struct {
	UserID int64
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if s.cfg.GetBool("modules.identity.password.enforce_strength") {
		if st := hash.CheckStrength(in.Password); !st.Valid {
			return nil, goerror.NewInvalidInput(nil, "password", st.Reason)
		}
	}

	hashed, err := s.password.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	userID, err := s.repoDB.CreateUser(ctx, entity.NewUser{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashed),
		CreatedAt:    now,
	})
	if errors.Is(err, entity.ErrDuplicateUsername) || errors.Is(err, entity.ErrDuplicateEmail) {
		slog.WarnContext(ctx, "user account already exists", "email", in.Email, "error", err)
		return nil, err
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID:       userID,
		Username:     in.Username,
		Email:        in.Email,
		RegisteredAt: now,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered", "user_id", userID, "error", err)
	}

	return &RegisterOutput{UserID: userID}, nil
}
