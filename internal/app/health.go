package app

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/router"
)

type healthResponse struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func (healthResponse) Message() string {
	return "Service is healthy"
}

type pinger func(ctx context.Context) error

// healthCheck reports unavailable when any dependency fails to answer a ping.
func healthCheck(db, cache pinger) router.Handler {
	return func(r *router.Request) (any, error) {
		ctx := r.Context()

		if err := db(ctx); err != nil {
			slog.ErrorContext(ctx, "health check failed", "dependency", "database", "error", err)
			return nil, goerror.NewBusiness("database unavailable", goerror.CodeUnavailable)
		}
		if err := cache(ctx); err != nil {
			slog.ErrorContext(ctx, "health check failed", "dependency", "redis", "error", err)
			return nil, goerror.NewBusiness("redis unavailable", goerror.CodeUnavailable)
		}

		return healthResponse{Database: "up", Redis: "up"}, nil
	}
}

func (a *App) health(r *router.Request) (any, error) {
	return healthCheck(a.dbConn.Ping, func(ctx context.Context) error {
		return a.cacheConn.Ping(ctx).Err()
	})(r)
}
