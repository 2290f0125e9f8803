// Package clock lets usecases read time through an interface so expiry
// logic (OTP lifetime, session TTL) can be tested with a fixed instant.
package clock

import "time"

type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock in UTC.
type TimeClocker struct{}

func New() *TimeClocker {
	return &TimeClocker{}
}

func (*TimeClocker) Now() time.Time {
	return time.Now().UTC()
}
