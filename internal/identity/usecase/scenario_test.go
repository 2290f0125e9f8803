package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_Alice(t *testing.T) {
	ctx := context.Background()
	s := newSuite(t)

	reg, err := s.uc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "Str0ng!Pw",
		Phone:    "",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), reg.UserID)

	user, err := s.uc.Authenticate(ctx, AuthenticateInput{Email: "alice@x.com", Password: "Str0ng!Pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	code, err := s.uc.IssueOTP(ctx, 1)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)

	ok, err := s.uc.VerifyOTP(ctx, 1, code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.uc.VerifyOTP(ctx, 1, code)
	require.NoError(t, err)
	assert.False(t, ok, "already used")

	require.NoError(t, s.uc.ChangePassword(ctx, ChangePasswordInput{
		UserID:          1,
		CurrentPassword: "Str0ng!Pw",
		NewPassword:     "NewStr0ng!Pw",
	}))

	_, err = s.uc.Authenticate(ctx, AuthenticateInput{Email: "alice@x.com", Password: "Str0ng!Pw"})
	require.ErrorIs(t, err, entity.ErrWrongPassword)

	_, err = s.uc.Authenticate(ctx, AuthenticateInput{Email: "alice@x.com", Password: "NewStr0ng!Pw"})
	require.NoError(t, err)
}

func TestScenario_AliceLoginFlow(t *testing.T) {
	ctx := context.Background()
	s := newSuite(t)
	s.register(t, "alice", "alice@x.com", "Str0ng!Pw")

	login, err := s.uc.Login(ctx, LoginInput{
		Email:     "Alice@X.com ",
		Password:  "Str0ng!Pw",
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.ChallengeToken)
	assert.Equal(t, "alice@x.com", login.Email)
	assert.Equal(t, s.clock.Now().Add(10*time.Minute), login.ExpiresAt)

	code := s.notifier.last("alice@x.com")
	require.NotEmpty(t, code)

	_, err = s.uc.LoginOTP(ctx, LoginOTPInput{ChallengeToken: login.ChallengeToken, Code: "000000x"})
	require.ErrorIs(t, err, entity.ErrOTPInvalidOrExpired)

	out, err := s.uc.LoginOTP(ctx, LoginOTPInput{
		ChallengeToken: login.ChallengeToken,
		Code:           code,
		IPAddress:      "203.0.113.7",
		UserAgent:      "curl/8",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.UserID)
	assert.Equal(t, "alice", out.Username)

	claims, err := s.jwt.Verify(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice@x.com", claims.UserEmail)

	require.NotNil(t, s.repo.user(1).LastLogin)

	_, err = s.uc.LoginOTP(ctx, LoginOTPInput{ChallengeToken: login.ChallengeToken, Code: code})
	require.ErrorIs(t, err, entity.ErrOTPInvalidOrExpired, "challenge is single use")

	assert.Equal(t, []entity.LoginStatus{entity.LoginStatusFailedOTP, entity.LoginStatusSuccess}, s.msg.statuses())
}
