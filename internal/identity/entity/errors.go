package entity

import "github.com/shandysiswandi/secureauth/internal/pkg/goerror"

var (
	ErrDuplicateUsername    = goerror.NewBusiness("username already taken", goerror.CodeConflict)
	ErrDuplicateEmail       = goerror.NewBusiness("email already registered", goerror.CodeConflict)
	ErrUnknownEmail         = goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	ErrWrongPassword        = goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	ErrAccountDisabled      = goerror.NewBusiness("account is disabled", goerror.CodeForbidden)
	ErrWrongCurrentPassword = goerror.NewBusiness("current password is incorrect", goerror.CodeUnauthorized)
	ErrUserNotFound         = goerror.NewBusiness("user not found", goerror.CodeNotFound)
	ErrOTPInvalidOrExpired  = goerror.NewBusiness("otp is invalid or expired", goerror.CodeUnauthorized)
	ErrNotificationFailure  = goerror.NewBusiness("failed to deliver otp, please try again", goerror.CodeUnavailable)
)
