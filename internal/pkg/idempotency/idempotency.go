// Package idempotency guards at-least-once message handlers so a redelivered
// event (same key) is processed once.
//
// State lives in Redis under "idempotency:<key>": a SETNX lock marks work in
// progress, then the key is overwritten with completed or failed.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("idempotency: already in progress")
	ErrAlreadyCompleted  = errors.New("idempotency: already completed")
	ErrAlreadyFailed     = errors.New("idempotency: already failed")
	ErrInvalidState      = errors.New("idempotency: invalid state")
)

type State string

const (
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Duplicate reports whether err means the key was seen before.
func Duplicate(err error) bool {
	return errors.Is(err, ErrAlreadyInProgress) || errors.Is(err, ErrAlreadyCompleted)
}

type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = 24 * time.Hour
)

type options struct {
	lock time.Duration
	ttl  time.Duration
	// retryFailed lets a key that previously failed run again.
	retryFailed bool
}

type Option func(*options)

// WithLockDuration bounds how long an in-progress marker survives a crash.
func WithLockDuration(d time.Duration) Option {
	return func(o *options) { o.lock = d }
}

// WithStateTTL sets how long the completed or failed marker is remembered.
func WithStateTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// WithRetryFailed allows a previously failed key to be attempted again.
func WithRetryFailed() Option {
	return func(o *options) { o.retryFailed = true }
}

type StateTracker struct {
	client redis.UniversalClient
	prefix string
}

func New(client redis.UniversalClient) *StateTracker {
	return &StateTracker{client: client, prefix: "idempotency:"}
}

// Acquire takes the lock for key, or reports the state that blocks it.
func (s *StateTracker) Acquire(ctx context.Context, key string, lock time.Duration) (State, error) {
	fk := s.prefix + key

	ok, err := s.client.SetNX(ctx, fk, string(StateInProgress), lock).Result()
	if err != nil {
		return "", err
	}
	if ok {
		return StateNone, nil
	}

	current, err := s.client.Get(ctx, fk).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.Acquire(ctx, key, lock)
	}
	if err != nil {
		return "", err
	}

	switch State(current) {
	case StateInProgress, StateCompleted, StateFailed:
		return State(current), nil
	default:
		return "", ErrInvalidState
	}
}

func (s *StateTracker) mark(ctx context.Context, key string, st State, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, string(st), ttl).Err()
}

// Exec runs fn once per key. A second call returns ErrAlreadyInProgress,
// ErrAlreadyCompleted or ErrAlreadyFailed without running fn.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	o := options{lock: defaultLockDuration, ttl: defaultStateTTL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lock <= 0 {
		o.lock = defaultLockDuration
	}
	if o.ttl <= 0 {
		o.ttl = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, o.lock)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	case StateFailed:
		if !o.retryFailed {
			return ErrAlreadyFailed
		}
		if err := s.mark(ctx, key, StateInProgress, o.lock); err != nil {
			return err
		}
	}

	if err := fn(ctx); err != nil {
		return errors.Join(err, s.mark(ctx, key, StateFailed, o.ttl))
	}

	return s.mark(ctx, key, StateCompleted, o.ttl)
}
