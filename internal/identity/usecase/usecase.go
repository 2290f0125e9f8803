package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/clock"
	"github.com/shandysiswandi/secureauth/internal/pkg/config"
	"github.com/shandysiswandi/secureauth/internal/pkg/hash"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/jwt"
	"github.com/shandysiswandi/secureauth/internal/pkg/otp"
	"github.com/shandysiswandi/secureauth/internal/pkg/uid"
	"github.com/shandysiswandi/secureauth/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultOTPTTL            = 5 * time.Minute
	defaultLoginChallengeTTL = 10 * time.Minute
)

type UserRegisteredEvent struct {
	UserID       int64
	Username     string
	Email        string
	RegisteredAt time.Time
}

type UserLoginEvent struct {
	EventID   string
	UserID    int64
	IPAddress string
	UserAgent string
	Status    entity.LoginStatus
	At        time.Time
}

// LoginChallenge is the pending login kept between the password step and the
// OTP step.
type LoginChallenge struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type repoDB interface {
	CreateUser(ctx context.Context, user entity.NewUser) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	SaveOTP(ctx context.Context, otp entity.OTP, revokePrevious bool) (int64, error)
	GetValidOTP(ctx context.Context, userID int64, codeDigest string, now time.Time) (*entity.OTP, error)
	MarkOTPUsed(ctx context.Context, id int64, at time.Time) (bool, error)
}

type repoCache interface {
	SaveChallenge(ctx context.Context, tokenDigest string, ch LoginChallenge, ttl time.Duration) error
	GetChallenge(ctx context.Context, tokenDigest string) (*LoginChallenge, error)
	DeleteChallenge(ctx context.Context, tokenDigest string) error
	RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
	PublishUserLogin(ctx context.Context, msg UserLoginEvent) error
}

type notifier interface {
	// SendOTP reports whether the code was handed to the mail transport.
	SendOTP(ctx context.Context, address, displayName, code string) bool
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoMessaging repoMessaging
	notifier      notifier
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	password      hash.Password
	otp           otp.Generator
	uid           uid.NumberID
	uuid          uid.StringID
	token         uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoMessaging repoMessaging
	Notifier      notifier
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	Password      hash.Password
	OTP           otp.Generator
	UID           uid.NumberID
	UUID          uid.StringID
	Token         uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoMessaging: dep.RepoMessaging,
		notifier:      dep.Notifier,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		password:      dep.Password,
		otp:           dep.OTP,
		uid:           dep.UID,
		uuid:          dep.UUID,
		token:         dep.Token,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) digest(str string) (string, error) {
	out, err := s.hmac.Hash(str)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *Usecase) otpTTL() time.Duration {
	if ttl := s.cfg.GetMinute("modules.identity.otp.ttl_minutes"); ttl > 0 {
		return ttl
	}
	return defaultOTPTTL
}

func (s *Usecase) loginChallengeTTL() time.Duration {
	if ttl := s.cfg.GetMinute("modules.identity.login_challenge_ttl_minutes"); ttl > 0 {
		return ttl
	}
	return defaultLoginChallengeTTL
}

// recordLogin publishes a login history entry. Failures are logged only.
func (s *Usecase) recordLogin(ctx context.Context, userID int64, ip, userAgent string, status entity.LoginStatus) {
	if err := s.repoMessaging.PublishUserLogin(ctx, UserLoginEvent{
		EventID:   s.uuid.Generate(),
		UserID:    userID,
		IPAddress: ip,
		UserAgent: userAgent,
		Status:    status,
		At:        s.clock.Now(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user login", "user_id", userID, "status", status.String(), "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
