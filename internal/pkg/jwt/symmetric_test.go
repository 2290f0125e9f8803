package jwt

import (
	"context"
	"strings"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type seqID struct{ n int }

func (s *seqID) Generate() string {
	s.n++
	return "jti-" + string(rune('0'+s.n))
}

var secret = []byte(strings.Repeat("k", 64))

func newSigner(t *testing.T, clk *fixedClock) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    secret,
		Issuer:    "secureauth",
		Audiences: []string{"secureauth-web"},
		TTL:       30 * time.Minute,
		Clock:     clk,
		UUID:      &seqID{},
	})
	require.NoError(t, err)
	return s
}

func TestSymmetric_RoundTrip(t *testing.T) {
	clk := &fixedClock{now: time.Now().Truncate(time.Second)}
	s := newSigner(t, clk)

	tok, err := s.Generate(1, "alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jti-1", tok.ID)
	assert.Equal(t, clk.now.Add(30*time.Minute), tok.ExpiresAt)

	claims, err := s.Verify(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.UserEmail)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "jti-1", claims.ID)
}

func TestSymmetric_Expired(t *testing.T) {
	clk := &fixedClock{now: time.Now().Truncate(time.Second)}
	s := newSigner(t, clk)

	tok, err := s.Generate(1, "alice", "alice@example.com")
	require.NoError(t, err)

	clk.now = clk.now.Add(31 * time.Minute)
	_, err = s.Verify(tok.Value)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSymmetric_Rejects(t *testing.T) {
	clk := &fixedClock{now: time.Now().Truncate(time.Second)}
	s := newSigner(t, clk)

	tok, err := s.Generate(1, "alice", "alice@example.com")
	require.NoError(t, err)

	t.Run("tampered", func(t *testing.T) {
		_, err := s.Verify(tok.Value[:len(tok.Value)-2] + "xx")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewHS512(Config{
			Secret: []byte(strings.Repeat("z", 64)), Issuer: "secureauth",
			Audiences: []string{"secureauth-web"}, TTL: time.Minute, Clock: clk, UUID: &seqID{},
		})
		require.NoError(t, err)
		_, err = other.Verify(tok.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("HS256", func(t *testing.T) {
		forged, err := libJWT.NewWithClaims(libJWT.SigningMethodHS256, Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        "x",
				Issuer:    "secureauth",
				Audience:  []string{"secureauth-web"},
				ExpiresAt: libJWT.NewNumericDate(clk.now.Add(time.Minute)),
			},
			UserID: 2,
		}).SignedString(secret)
		require.NoError(t, err)

		_, err = s.Verify(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewHS512_ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestAuthContext(t *testing.T) {
	assert.Nil(t, GetAuth(context.Background()))

	ctx := SetAuth(context.Background(), Claims{UserID: 7, Username: "bob"})
	got := GetAuth(ctx)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "bob", got.Username)
}
