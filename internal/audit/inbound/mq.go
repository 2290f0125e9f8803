package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/secureauth/internal/pkg/config"
	"github.com/shandysiswandi/secureauth/internal/pkg/goroutine"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/messaging"
	"github.com/shandysiswandi/secureauth/internal/pkg/uid"
	"github.com/shandysiswandi/secureauth/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	consumer messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	if !slices.Contains(cfg.GetArray("modules.audit.consumer_names"), event.UserLoginConsumerAudit) {
		return
	}

	h := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	routine.Go(ctx, func(pCtx context.Context) error {
		slog.InfoContext(ctx, "Running job for handling consumer", "consumer", event.UserLoginConsumerAudit)
		return consumer.Consume(pCtx,
			event.UserLoginDestination,
			h.UserLoginAudit,
			messaging.WithGroup(event.UserLoginConsumerAudit),
			messaging.WithConcurrency(cfg.GetInt("modules.audit.concurrency")),
		)
	})
}
