package inbound

import (
	"context"

	"github.com/shandysiswandi/secureauth/internal/identity/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	LoginOTP(ctx context.Context, in usecase.LoginOTPInput) (*usecase.LoginOTPOutput, error)
	ResendOTP(ctx context.Context, in usecase.ResendOTPInput) error
	Logout(ctx context.Context) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Auth
	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/login/otp", end.LoginOTP)
	r.POST("/api/v1/identity/login/otp/resend", end.ResendOTP)
	r.POST("/api/v1/identity/logout", end.Logout) // need authenticated

	// Profile (need authenticated)
	r.GET("/api/v1/identity/profile", end.Profile)
	r.POST("/api/v1/identity/password/change", end.PasswordChange)
}
