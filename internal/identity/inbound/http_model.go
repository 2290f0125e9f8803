package inbound

import (
	"net/http"
	"time"
)

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
}

type RegisterResponse struct {
	UserID int64 `json:"user_id,string"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. You can now sign in."
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ChallengeToken string    `json:"challenge_token"`
	Email          string    `json:"email"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (LoginResponse) Message() string {
	return "A verification code has been sent to your email."
}

type LoginOTPRequest struct {
	ChallengeToken string `json:"challenge_token"`
	Code           string `json:"code"`
}

type LoginOTPResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserData  `json:"user"`
}

func (LoginOTPResponse) Message() string {
	return "Login successful."
}

type UserData struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ResendOTPRequest struct {
	ChallengeToken string `json:"challenge_token"`
}

type ResendOTPResponse struct{}

func (ResendOTPResponse) Message() string {
	return "A new verification code has been sent to your email."
}

type ProfileResponse struct {
	ID        int64      `json:"id,string"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

type PasswordChangeRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

type PasswordChangeResponse struct{}

func (PasswordChangeResponse) Message() string {
	return "Password changed successfully."
}
