package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// DefaultLength is the code length used when none is configured.
const DefaultLength = 6

// ErrInvalidLength is returned by NewNumeric for non-positive lengths.
var ErrInvalidLength = errors.New("otp: length must be positive")

// Generator creates one-time codes.
type Generator interface {
	// Generate returns a fresh code.
	Generate() (string, error)
	// Valid reports whether code has the shape Generate produces.
	Valid(code string) bool
}

// Numeric generates uniformly random decimal codes.
type Numeric struct {
	length int
	random io.Reader
}

// NewNumeric returns a Numeric generator producing codes of length digits.
// A zero length selects DefaultLength.
func NewNumeric(length int) (*Numeric, error) {
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 {
		return nil, ErrInvalidLength
	}
	return &Numeric{length: length, random: rand.Reader}, nil
}

// Generate returns length random digits. Bytes of 250 and above are rejected
// so every digit is equally likely.
func (n *Numeric) Generate() (string, error) {
	code := make([]byte, 0, n.length)
	buf := make([]byte, n.length)

	for len(code) < n.length {
		if _, err := io.ReadFull(n.random, buf); err != nil {
			return "", fmt.Errorf("otp: read random: %w", err)
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			code = append(code, '0'+b%10)
			if len(code) == n.length {
				break
			}
		}
	}

	return string(code), nil
}

// Valid reports whether code is exactly length ASCII digits.
func (n *Numeric) Valid(code string) bool {
	if len(code) != n.length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
