package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/mail"
)

type captureMail struct {
	msgs []mail.Message
	err  error
}

func (c *captureMail) Close() error { return nil }

func (c *captureMail) Send(_ context.Context, msg mail.Message) error {
	c.msgs = append(c.msgs, msg)
	return c.err
}

func TestMail_SendWelcome(t *testing.T) {
	c := &captureMail{}
	m := New(c, instrument.NewNoop())

	require.NoError(t, m.SendWelcome(context.Background(), "alice@example.com", "<alice>"))
	require.Len(t, c.msgs, 1)

	msg := c.msgs[0]
	assert.Equal(t, []string{"alice@example.com"}, msg.To)
	assert.Equal(t, welcomeSubject, msg.Subject)
	assert.Contains(t, msg.TextBody, "Hi <alice>,")
	assert.Contains(t, msg.HTMLBody, "Hi &lt;alice&gt;,")

	c.err = errors.New("relay down")
	assert.ErrorIs(t, m.SendWelcome(context.Background(), "alice@example.com", "alice"), c.err)
}
