package entity

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
	IsActive     bool
}

// NewUser is a user about to be inserted. Email is already lowercased and
// PasswordHash already computed.
type NewUser struct {
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}
