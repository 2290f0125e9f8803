package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/secureauth/internal/identity/inbound"
	"github.com/shandysiswandi/secureauth/internal/identity/outbound/cache"
	"github.com/shandysiswandi/secureauth/internal/identity/outbound/db"
	"github.com/shandysiswandi/secureauth/internal/identity/outbound/mq"
	"github.com/shandysiswandi/secureauth/internal/identity/outbound/notifier"
	"github.com/shandysiswandi/secureauth/internal/identity/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/clock"
	"github.com/shandysiswandi/secureauth/internal/pkg/config"
	"github.com/shandysiswandi/secureauth/internal/pkg/hash"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/jwt"
	"github.com/shandysiswandi/secureauth/internal/pkg/mail"
	"github.com/shandysiswandi/secureauth/internal/pkg/messaging"
	"github.com/shandysiswandi/secureauth/internal/pkg/otp"
	"github.com/shandysiswandi/secureauth/internal/pkg/router"
	"github.com/shandysiswandi/secureauth/internal/pkg/uid"
	"github.com/shandysiswandi/secureauth/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  redis.UniversalClient      `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Token      uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Password   hash.Password              `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoCache:     cache.NewCache(dep.CacheConn, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Notifier:      notifier.NewNotifier(dep.Mail, dep.Config.GetMinute("modules.identity.otp.ttl_minutes"), dep.Instrument),
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		Password:      dep.Password,
		OTP:           dep.OTP,
		UID:           dep.UID,
		UUID:          dep.UUID,
		Token:         dep.Token,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
