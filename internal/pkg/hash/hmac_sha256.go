package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSHA256 is a keyed, deterministic digest. The same input always yields
// the same hex string, so digests can be stored and matched by equality.
type HMACSHA256 struct {
	secret []byte
}

// NewHMACSHA256 creates a new hasher keyed with secret.
func NewHMACSHA256(secret string) *HMACSHA256 {
	return &HMACSHA256{secret: []byte(secret)}
}

// Hash returns the hex-encoded HMAC of str. It never fails.
func (s *HMACSHA256) Hash(str string) ([]byte, error) {
	return []byte(s.Digest(str)), nil
}

// Digest returns the hex-encoded HMAC of str.
func (s *HMACSHA256) Digest(str string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(str))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares str against a hex-encoded HMAC in constant time.
func (s *HMACSHA256) Verify(hashed, str string) bool {
	return hmac.Equal([]byte(hashed), []byte(s.Digest(str)))
}
