package entity

import "time"

// LoginHistory is one login attempt outcome as stored in identity_login_history.
type LoginHistory struct {
	ID        int64
	UserID    int64
	LoginTime time.Time
	IPAddress string
	UserAgent string
	Status    string
}
