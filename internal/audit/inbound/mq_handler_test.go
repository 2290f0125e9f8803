package inbound

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/secureauth/internal/audit/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
)

type fakeMessage struct {
	body    []byte
	headers map[string]string
}

func (m fakeMessage) Topic() string            { return "user_login" }
func (m fakeMessage) Key() []byte              { return nil }
func (m fakeMessage) Body() []byte             { return m.body }
func (m fakeMessage) Header(key string) string { return m.headers[key] }
func (m fakeMessage) Timestamp() time.Time     { return time.Time{} }

type fakeUsecase struct {
	calls []usecase.ConsumeUserLoginInput
	cid   string
	err   error
}

func (f *fakeUsecase) ConsumeUserLogin(ctx context.Context, in usecase.ConsumeUserLoginInput) error {
	f.calls = append(f.calls, in)
	f.cid = instrument.GetCorrelationID(ctx)
	return f.err
}

type stubID struct{}

func (stubID) Generate() string { return "generated" }

func TestMQHandler_UserLoginAudit(t *testing.T) {
	body := []byte(`{"event_id":"evt-1","user_id":1,"ip_address":"203.0.113.7","user_agent":"curl/8","status":"success","at":"2025-01-01T10:00:00Z"}`)

	t.Run("decodes payload", func(t *testing.T) {
		uc := &fakeUsecase{}
		h := &MQHandler{uc: uc, uuid: stubID{}, ins: instrument.NewNoop()}

		require.NoError(t, h.UserLoginAudit(context.Background(), fakeMessage{body: body, headers: map[string]string{"cID": "cid-1"}}))
		require.Len(t, uc.calls, 1)
		assert.Equal(t, usecase.ConsumeUserLoginInput{
			EventID:   "evt-1",
			UserID:    1,
			IPAddress: "203.0.113.7",
			UserAgent: "curl/8",
			Status:    "success",
			At:        time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		}, uc.calls[0])
		assert.Equal(t, "cid-1", uc.cid)
	})

	t.Run("generates correlation id", func(t *testing.T) {
		uc := &fakeUsecase{}
		h := &MQHandler{uc: uc, uuid: stubID{}, ins: instrument.NewNoop()}

		require.NoError(t, h.UserLoginAudit(context.Background(), fakeMessage{body: body}))
		assert.Equal(t, "generated", uc.cid)
	})

	t.Run("malformed body is acknowledged", func(t *testing.T) {
		uc := &fakeUsecase{}
		h := &MQHandler{uc: uc, uuid: stubID{}, ins: instrument.NewNoop()}

		require.NoError(t, h.UserLoginAudit(context.Background(), fakeMessage{body: []byte(`nope`)}))
		assert.Empty(t, uc.calls)
	})

	t.Run("usecase error is returned", func(t *testing.T) {
		uc := &fakeUsecase{err: errors.New("db down")}
		h := &MQHandler{uc: uc, uuid: stubID{}, ins: instrument.NewNoop()}

		assert.Error(t, h.UserLoginAudit(context.Background(), fakeMessage{body: body}))
	})
}
