package entity

import "time"

// OTP is a stored one-time code. Code holds the keyed digest, never the
// plaintext sent to the user.
type OTP struct {
	ID        int64
	UserID    int64
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
	IsRevoked bool
	UsedAt    *time.Time
}

// Usable reports whether the record can still be consumed at now.
func (o OTP) Usable(now time.Time) bool {
	return !o.IsUsed && !o.IsRevoked && now.Before(o.ExpiresAt)
}
