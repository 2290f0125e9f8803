package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/audit/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/messaging"
	"github.com/shandysiswandi/secureauth/internal/pkg/uid"
	"github.com/shandysiswandi/secureauth/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) UserLoginAudit(ctx context.Context, msg messaging.Message) error {
	cid := msg.Header(keyOfCorrelationID)
	if cid == "" {
		cid = h.uuid.Generate()
	}
	ctx = instrument.SetCorrelationID(ctx, cid)

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "UserLoginAudit")
	defer span.End()

	var payload event.UserLoginMessage
	if err := json.Unmarshal(msg.Body(), &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user login audit", "msg_body", string(msg.Body()), "error", err)
		return nil
	}

	return h.uc.ConsumeUserLogin(ctx, usecase.ConsumeUserLoginInput{
		EventID:   payload.EventID,
		UserID:    payload.UserID,
		IPAddress: payload.IPAddress,
		UserAgent: payload.UserAgent,
		Status:    payload.Status,
		At:        payload.At,
	})
}
