package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// Token generates unguessable hex strings for bearer-style secrets such as
// login challenge tokens. Store only a digest of the value.
type Token struct {
	size int
}

// NewToken returns a generator of size random bytes (hex encoded, so twice as
// many characters). Sizes under 16 are raised to 32.
func NewToken(size int) *Token {
	if size < 16 {
		size = 32
	}
	return &Token{size: size}
}

func (t *Token) Generate() string {
	b := make([]byte, t.size)
	// crypto/rand.Read does not return an error since Go 1.24.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
