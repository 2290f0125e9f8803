package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/secureauth/internal/pkg/idempotency"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/validator"
)

type sentMail struct {
	address  string
	username string
}

type fakeMail struct {
	sent []sentMail
	err  error
}

func (f *fakeMail) SendWelcome(_ context.Context, address, username string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{address: address, username: username})
	return nil
}

// memIdempotency mirrors the Redis tracker: completed keys are not run again,
// failed keys may retry.
type memIdempotency struct {
	done map[string]bool
	keys []string
}

func (m *memIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	m.keys = append(m.keys, key)
	if m.done[key] {
		return idempotency.ErrAlreadyCompleted
	}
	if err := fn(ctx); err != nil {
		return err
	}
	m.done[key] = true
	return nil
}

func newUsecase(t *testing.T, m *fakeMail) (*Usecase, *memIdempotency) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	idem := &memIdempotency{done: map[string]bool{}}
	return New(Dependency{
		RepoMail:    m,
		Idempotency: idem,
		Validator:   v,
		Instrument:  instrument.NewNoop(),
	}), idem
}

func TestUsecase_ConsumeUserRegistered(t *testing.T) {
	in := ConsumeUserRegisteredInput{UserID: 1, Username: "alice", Email: "alice@example.com"}

	t.Run("sends once per user", func(t *testing.T) {
		m := &fakeMail{}
		uc, idem := newUsecase(t, m)

		require.NoError(t, uc.ConsumeUserRegistered(context.Background(), in))
		require.NoError(t, uc.ConsumeUserRegistered(context.Background(), in))

		assert.Equal(t, []sentMail{{address: "alice@example.com", username: "alice"}}, m.sent)
		assert.Equal(t, []string{"notification:welcome:1", "notification:welcome:1"}, idem.keys)
	})

	t.Run("invalid payload is dropped", func(t *testing.T) {
		m := &fakeMail{}
		uc, idem := newUsecase(t, m)

		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{UserID: 1, Username: "alice", Email: "not-an-email"})
		require.NoError(t, err)
		assert.Empty(t, m.sent)
		assert.Empty(t, idem.keys)
	})

	t.Run("send failure is returned for redelivery", func(t *testing.T) {
		m := &fakeMail{err: errors.New("relay down")}
		uc, _ := newUsecase(t, m)

		err := uc.ConsumeUserRegistered(context.Background(), in)
		require.Error(t, err)

		m.err = nil
		require.NoError(t, uc.ConsumeUserRegistered(context.Background(), in))
		assert.Len(t, m.sent, 1)
	})
}
