package email

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

const welcomeSubject = "Welcome to Secure Auth System"

var (
	welcomeHTML = htmltemplate.Must(htmltemplate.New("welcome.html").Parse(
		`<p>Hi {{.Username}},</p>` +
			`<p>Your account is ready. Each sign-in asks for your password and a one-time code sent to this address.</p>` +
			`<p>If you did not create this account, please ignore this email.</p>`))

	welcomeText = texttemplate.Must(texttemplate.New("welcome.txt").Parse(
		"Hi {{.Username}},\n\n" +
			"Your account is ready. Each sign-in asks for your password and a one-time code sent to this address.\n\n" +
			"If you did not create this account, please ignore this email.\n"))
)

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

// SendWelcome renders and sends the welcome mail to a newly registered user.
func (m *Mail) SendWelcome(ctx context.Context, address, username string) (err error) {
	ctx, span := m.ins.Tracer("notification.outbound.email").Start(ctx, "SendWelcome")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	data := struct{ Username string }{Username: username}

	var html, text bytes.Buffer
	if err = welcomeHTML.Execute(&html, data); err != nil {
		return err
	}
	if err = welcomeText.Execute(&text, data); err != nil {
		return err
	}

	return m.client.Send(ctx, mail.Message{
		To:       []string{address},
		Subject:  welcomeSubject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	})
}
