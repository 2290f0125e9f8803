package inbound

import (
	"context"

	"github.com/shandysiswandi/secureauth/internal/audit/usecase"
)

type uc interface {
	ConsumeUserLogin(ctx context.Context, in usecase.ConsumeUserLoginInput) error
}
