package entity

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("identity: invalid login state transition")

// LoginState is the progress of one login attempt. It only moves forward one
// step at a time.
type LoginState int8

const (
	LoginStateUnauthenticated LoginState = iota
	LoginStatePasswordVerified
	LoginStateOTPVerified
)

func (s LoginState) String() string {
	switch s {
	case LoginStateUnauthenticated:
		return "UNAUTHENTICATED"
	case LoginStatePasswordVerified:
		return "PASSWORD_VERIFIED"
	case LoginStateOTPVerified:
		return "OTP_VERIFIED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further transition is possible.
func (s LoginState) Terminal() bool {
	return s == LoginStateOTPVerified
}

// Next returns target when it directly follows s.
func (s LoginState) Next(target LoginState) (LoginState, error) {
	if s.Terminal() || target != s+1 {
		return s, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}

// LoginAttempt tracks a login from password check to session grant. Address
// is where the OTP is delivered.
type LoginAttempt struct {
	State    LoginState
	UserID   int64
	Username string
	Address  string
}

// Advance moves the attempt to target or leaves it unchanged on error.
func (a *LoginAttempt) Advance(target LoginState) error {
	next, err := a.State.Next(target)
	if err != nil {
		return err
	}
	a.State = next
	return nil
}
