package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/secureauth/internal/audit/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
)

type conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type DB struct {
	conn conn
	ins  instrument.Instrumentation
}

func NewDB(conn conn, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

func (s *DB) CreateLoginHistory(ctx context.Context, h entity.LoginHistory) error {
	ctx, span := s.ins.Tracer("audit.outbound.db").Start(ctx, "CreateLoginHistory")
	defer span.End()

	query := `INSERT INTO identity_login_history (id, user_id, login_time, ip_address, user_agent, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := s.conn.Exec(ctx, query, h.ID, h.UserID, h.LoginTime, h.IPAddress, h.UserAgent, h.Status); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
