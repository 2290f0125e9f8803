package inbound

import (
	"github.com/shandysiswandi/secureauth/internal/identity/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the login flow and the profile.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new user account.
// @Summary Register user
// @Description Creates a new account. The password must be confirmed and meet the strength policy.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} router.successResponse{data=RegisterResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username or email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if req.Password != req.ConfirmPassword {
		return nil, goerror.NewInvalidInput(nil, "confirm_password", "confirm_password must match password")
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{UserID: resp.UserID}, nil
}

// Login checks the password and mails a one-time code.
// @Summary Start login
// @Description Verifies credentials, sends an OTP by email and returns a challenge token for the OTP step.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Account disabled"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "OTP could not be delivered"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: r.ClientIP(),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		ChallengeToken: resp.ChallengeToken,
		Email:          resp.Email,
		ExpiresAt:      resp.ExpiresAt,
	}, nil
}

// LoginOTP completes a login challenge and issues a session token.
// @Summary Complete login with OTP
// @Description Verifies the emailed code for a login challenge and returns a bearer access token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginOTPRequest true "OTP payload"
// @Success 200 {object} router.successResponse{data=LoginOTPResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid or expired code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login/otp [post]
func (h *HTTPEndpoint) LoginOTP(r *router.Request) (any, error) {
	var req LoginOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginOTP(r.Context(), usecase.LoginOTPInput{
		ChallengeToken: req.ChallengeToken,
		Code:           req.Code,
		IPAddress:      r.ClientIP(),
		UserAgent:      r.UserAgent(),
	})
	if err != nil {
		return nil, err
	}

	return LoginOTPResponse{
		AccessToken: resp.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   resp.ExpiresAt,
		User: UserData{
			ID:       resp.UserID,
			Username: resp.Username,
			Email:    resp.Email,
		},
	}, nil
}

// ResendOTP mails a new code for a pending login.
// @Summary Resend OTP
// @Description Issues and sends a new code. Earlier codes of the challenge stop working.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body ResendOTPRequest true "Challenge payload"
// @Success 200 {object} router.successResponse "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unknown or expired challenge"
// @Failure 503 {object} router.errorResponse "OTP could not be delivered"
// @Router /api/v1/identity/login/otp/resend [post]
func (h *HTTPEndpoint) ResendOTP(r *router.Request) (any, error) {
	var req ResendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResendOTP(r.Context(), usecase.ResendOTPInput{ChallengeToken: req.ChallengeToken}); err != nil {
		return nil, err
	}

	return ResendOTPResponse{}, nil
}

// Logout revokes the current session token.
// @Summary Logout
// @Tags Identity, Authentication
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/logout [post]
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	return nil, h.uc.Logout(r.Context())
}

// Profile returns the authenticated user.
// @Summary Get profile
// @Tags Identity, Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 404 {object} router.errorResponse "User not found"
// @Router /api/v1/identity/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Username:  resp.Username,
		Email:     resp.Email,
		Phone:     resp.Phone,
		CreatedAt: resp.CreatedAt,
		LastLogin: resp.LastLogin,
	}, nil
}

// PasswordChange updates the password of the authenticated user.
// @Summary Change password
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PasswordChangeRequest true "Password change payload"
// @Success 200 {object} router.successResponse "Password changed"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized or wrong current password"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/password/change [post]
func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if req.NewPassword != req.ConfirmNewPassword {
		return nil, goerror.NewInvalidInput(nil, "confirm_new_password", "confirm_new_password must match new_password")
	}

	if err := h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordChangeResponse{}, nil
}
