// Package config reads typed settings by dotted key ("modules.identity.otp.length").
package config

import (
	"io"
	"time"
)

// Config is the read side of the settings store. Missing keys yield the zero
// value; callers apply their own defaults.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64

	// GetSecond and GetMinute read an integer and scale it.
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration

	// GetArray accepts either a YAML list or a comma separated string.
	GetArray(key string) []string
}
