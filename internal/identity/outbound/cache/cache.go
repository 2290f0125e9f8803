package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/secureauth/internal/identity/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	prefixLoginChallenge = "identity:login_challenge:"
	prefixRevokedSession = "identity:revoked_session:"
)

// Cache keeps short-lived identity state in Redis: pending login challenges
// and the denylist of logged out session ids.
type Cache struct {
	client redis.UniversalClient
	ins    instrument.Instrumentation
}

func NewCache(client redis.UniversalClient, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) SaveChallenge(ctx context.Context, tokenDigest string, ch usecase.LoginChallenge, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "SaveChallenge")
	defer func() { c.endSpan(span, err) }()

	body, err := json.Marshal(ch)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, prefixLoginChallenge+tokenDigest, body, ttl).Err()
}

func (c *Cache) GetChallenge(ctx context.Context, tokenDigest string) (_ *usecase.LoginChallenge, err error) {
	ctx, span := c.startSpan(ctx, "GetChallenge")
	defer func() { c.endSpan(span, err) }()

	body, err := c.client.Get(ctx, prefixLoginChallenge+tokenDigest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var ch usecase.LoginChallenge
	if err := json.Unmarshal(body, &ch); err != nil {
		return nil, err
	}

	return &ch, nil
}

func (c *Cache) DeleteChallenge(ctx context.Context, tokenDigest string) (err error) {
	ctx, span := c.startSpan(ctx, "DeleteChallenge")
	defer func() { c.endSpan(span, err) }()

	return c.client.Del(ctx, prefixLoginChallenge+tokenDigest).Err()
}

// RevokeSession denylists tokenID for ttl, which should cover the token's
// remaining lifetime.
func (c *Cache) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "RevokeSession")
	defer func() { c.endSpan(span, err) }()

	return c.client.Set(ctx, prefixRevokedSession+tokenID, 1, ttl).Err()
}

// IsRevoked implements router.RevocationChecker.
func (c *Cache) IsRevoked(ctx context.Context, tokenID string) (_ bool, err error) {
	ctx, span := c.startSpan(ctx, "IsRevoked")
	defer func() { c.endSpan(span, err) }()

	n, err := c.client.Exists(ctx, prefixRevokedSession+tokenID).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
