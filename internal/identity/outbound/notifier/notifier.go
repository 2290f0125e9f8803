package notifier

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"log/slog"
	texttemplate "text/template"
	"time"

	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

const SenderName = "Secure Auth System"

var (
	otpHTML = htmltemplate.Must(htmltemplate.New("otp_html").Parse(otpHTMLTemplate))
	otpText = texttemplate.Must(texttemplate.New("otp_text").Parse(otpTextTemplate))
)

type otpData struct {
	SenderName  string
	DisplayName string
	Code        string
	ValidFor    int
	Year        int
}

// Notifier delivers one-time codes by email.
type Notifier struct {
	mail     mail.Mail
	validFor time.Duration
	now      func() time.Time
	ins      instrument.Instrumentation
}

func NewNotifier(m mail.Mail, validFor time.Duration, ins instrument.Instrumentation) *Notifier {
	return &Notifier{mail: m, validFor: validFor, now: time.Now, ins: ins}
}

// SendOTP renders and sends the code. Failures are logged and reported as
// false; there is no retry.
func (n *Notifier) SendOTP(ctx context.Context, address, displayName, code string) bool {
	ctx, span := n.ins.Tracer("identity.outbound.notifier").Start(ctx, "SendOTP")
	defer span.End()

	data := otpData{
		SenderName:  SenderName,
		DisplayName: displayName,
		Code:        code,
		ValidFor:    int(n.validFor / time.Minute),
		Year:        n.now().Year(),
	}

	var html, text bytes.Buffer
	if err := otpHTML.Execute(&html, data); err != nil {
		slog.ErrorContext(ctx, "failed to render otp html", "email", address, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false
	}
	if err := otpText.Execute(&text, data); err != nil {
		slog.ErrorContext(ctx, "failed to render otp text", "email", address, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false
	}

	if err := n.mail.Send(ctx, mail.Message{
		To:       []string{address},
		Subject:  "Your login code - " + code,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "email", address, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false
	}

	slog.InfoContext(ctx, "otp email sent", "email", address, "valid_minutes", data.ValidFor)
	return true
}
