package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/router"
	"github.com/shandysiswandi/secureauth/internal/pkg/uid"
)

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		db     pinger
		cache  pinger
		status int
		msg    string
	}{
		{"healthy", ok, ok, http.StatusOK, "Service is healthy"},
		{"database down", down, ok, http.StatusServiceUnavailable, "database unavailable"},
		{"redis down", ok, down, http.StatusServiceUnavailable, "redis unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := router.NewRouter(router.Config{UUID: uid.NewUUID(), Instrument: instrument.NewNoop()})
			r.GET("/health", healthCheck(tt.db, tt.cache))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)

			var out map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, tt.msg, out["message"])
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOCAL", "")
	assert.Equal(t, "/config/config.yaml", ConfigPath())

	t.Setenv("LOCAL", "true")
	assert.Equal(t, "./config/config.yaml", ConfigPath())

	t.Setenv("CONFIG_PATH", "/etc/secureauth.yaml")
	assert.Equal(t, "/etc/secureauth.yaml", ConfigPath())
}
