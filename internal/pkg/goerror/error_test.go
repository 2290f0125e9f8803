package goerror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInternal, http.StatusInternalServerError},
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeTimeout, http.StatusRequestTimeout},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{Code(99), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := NewBusiness("x", tt.code)
			ge, ok := As(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, ge.StatusCode())
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	errTaken := NewBusiness("Email already registered", CodeConflict)
	wrapped := fmt.Errorf("register: %w", errTaken)

	assert.ErrorIs(t, wrapped, errTaken)
	assert.NotErrorIs(t, wrapped, NewBusiness("Email already registered", CodeConflict))
}

func TestNewServer(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewServer(cause)

	ge, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, TypeServer, ge.Type())
	assert.Equal(t, "Internal server error", ge.Msg())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, ge.StatusCode())
}

func TestNewInvalidInput(t *testing.T) {
	t.Run("with fields", func(t *testing.T) {
		ge, ok := As(NewInvalidInput(nil, "password", "too weak", "email", "required"))
		require.True(t, ok)
		assert.Equal(t, CodeInvalidInput, ge.Code())
		assert.Equal(t, map[string]string{"password": "too weak", "email": "required"}, ge.Fields())
	})

	t.Run("odd pairs become invalid format", func(t *testing.T) {
		ge, ok := As(NewInvalidInput(nil, "password"))
		require.True(t, ok)
		assert.Equal(t, CodeInvalidFormat, ge.Code())
	})

	t.Run("wrapping a validator error", func(t *testing.T) {
		cause := errors.New("Key: 'Email' failed on the 'email' tag")
		ge, ok := As(NewInvalidInput(cause))
		require.True(t, ok)
		assert.Equal(t, TypeValidation, ge.Type())
		assert.ErrorIs(t, ge, cause)
	})
}

func TestNewInvalidFormat(t *testing.T) {
	ge, _ := As(NewInvalidFormat())
	assert.Equal(t, "Invalid request body", ge.Msg())

	ge, _ = As(NewInvalidFormat("body too large"))
	assert.Equal(t, "body too large", ge.Msg())
	assert.Equal(t, http.StatusBadRequest, ge.StatusCode())
}
