package usecase

import (
	"context"

	"github.com/shandysiswandi/secureauth/internal/audit/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/idempotency"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/uid"
	"github.com/shandysiswandi/secureauth/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateLoginHistory(ctx context.Context, h entity.LoginHistory) error
}

type Usecase struct {
	repoDB      repoDB
	idempotency idempotency.Idempotency
	validator   validator.Validator
	uid         uid.NumberID
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	UID         uid.NumberID
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		idempotency: dep.Idempotency,
		validator:   dep.Validator,
		uid:         dep.UID,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("audit.usecase").Start(ctx, name)
}
