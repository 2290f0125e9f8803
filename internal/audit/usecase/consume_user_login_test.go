package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/secureauth/internal/audit/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/idempotency"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/validator"
)

type memRepo struct {
	rows []entity.LoginHistory
	err  error
}

func (m *memRepo) CreateLoginHistory(_ context.Context, h entity.LoginHistory) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, h)
	return nil
}

type memIdempotency struct {
	done map[string]bool
}

func (m *memIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if m.done[key] {
		return idempotency.ErrAlreadyCompleted
	}
	if err := fn(ctx); err != nil {
		return err
	}
	m.done[key] = true
	return nil
}

type seqID struct{ n int64 }

func (s *seqID) Generate() int64 {
	s.n++
	return s.n
}

func newUsecase(t *testing.T, repo *memRepo) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:      repo,
		Idempotency: &memIdempotency{done: map[string]bool{}},
		Validator:   v,
		UID:         &seqID{},
		Instrument:  instrument.NewNoop(),
	})
}

func TestUsecase_ConsumeUserLogin(t *testing.T) {
	at := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	in := ConsumeUserLoginInput{
		EventID:   "evt-1",
		UserID:    1,
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8",
		Status:    "failed_otp",
		At:        at,
	}

	t.Run("records once per event", func(t *testing.T) {
		repo := &memRepo{}
		uc := newUsecase(t, repo)

		require.NoError(t, uc.ConsumeUserLogin(context.Background(), in))
		require.NoError(t, uc.ConsumeUserLogin(context.Background(), in))

		require.Len(t, repo.rows, 1)
		assert.Equal(t, entity.LoginHistory{
			ID:        1,
			UserID:    1,
			LoginTime: at,
			IPAddress: "203.0.113.7",
			UserAgent: "curl/8",
			Status:    "failed_otp",
		}, repo.rows[0])
	})

	t.Run("unknown status is dropped", func(t *testing.T) {
		repo := &memRepo{}
		uc := newUsecase(t, repo)

		bad := in
		bad.Status = "locked"
		require.NoError(t, uc.ConsumeUserLogin(context.Background(), bad))
		assert.Empty(t, repo.rows)
	})

	t.Run("repo error is returned", func(t *testing.T) {
		repo := &memRepo{err: errors.New("db down")}
		uc := newUsecase(t, repo)

		assert.Error(t, uc.ConsumeUserLogin(context.Background(), in))
	})
}
