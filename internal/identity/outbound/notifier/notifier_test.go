package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMail struct {
	err  error
	sent []mail.Message
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) Close() error { return nil }

func TestNotifier_SendOTP(t *testing.T) {
	m := &fakeMail{}
	n := NewNotifier(m, 5*time.Minute, instrument.NewNoop())

	ok := n.SendOTP(context.Background(), "alice@x.com", "<alice>", "042913")
	require.True(t, ok)
	require.Len(t, m.sent, 1)

	msg := m.sent[0]
	assert.Equal(t, []string{"alice@x.com"}, msg.To)
	assert.Equal(t, "Your login code - 042913", msg.Subject)
	assert.Contains(t, msg.TextBody, "042913")
	assert.Contains(t, msg.TextBody, "valid for 5 minutes")
	assert.Contains(t, msg.HTMLBody, "&lt;alice&gt;", "display name is escaped")
	assert.Contains(t, msg.HTMLBody, SenderName)
}

func TestNotifier_SendOTP_Failure(t *testing.T) {
	m := &fakeMail{err: errors.New("relay refused")}
	n := NewNotifier(m, 5*time.Minute, instrument.NewNoop())

	assert.False(t, n.SendOTP(context.Background(), "alice@x.com", "alice", "042913"))
}

func TestNotifier_SendOTP_LogDriver(t *testing.T) {
	n := NewNotifier(mail.NewLog("no-reply@secureauth.local", SenderName), 5*time.Minute, instrument.NewNoop())
	assert.True(t, n.SendOTP(context.Background(), "alice@x.com", "alice", "042913"))
}
