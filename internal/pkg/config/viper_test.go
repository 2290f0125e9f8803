package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: secureauth
mail:
  host: localhost
  port: 1025
modules:
  identity:
    otp:
      ttl_minutes: 5
      revoke_previous_on_issue: true
instrument:
  log_mask_fields: [password, code]
  trace_endpoints: "/a, /b,,"
http:
  read_timeout_seconds: 15
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "secureauth", cfg.GetString("app.name"))
	assert.Equal(t, 1025, cfg.GetInt("mail.port"))
	assert.Equal(t, int64(1025), cfg.GetInt64("mail.port"))
	assert.True(t, cfg.GetBool("modules.identity.otp.revoke_previous_on_issue"))
	assert.Equal(t, 5*time.Minute, cfg.GetMinute("modules.identity.otp.ttl_minutes"))
	assert.Equal(t, 15*time.Second, cfg.GetSecond("http.read_timeout_seconds"))
	assert.Equal(t, []string{"password", "code"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Equal(t, []string{"/a", "/b"}, cfg.GetArray("instrument.trace_endpoints"))
	assert.Empty(t, cfg.GetArray("missing.key"))
	assert.Zero(t, cfg.GetMinute("missing.key"))
	assert.NoError(t, cfg.Close())
}

func TestNewViperFromBytes_EnvOverride(t *testing.T) {
	t.Setenv("SECUREAUTH_MAIL_HOST", "smtp.example.com")

	cfg, err := NewViperFromBytes("yaml", []byte(sample), WithEnvPrefix("SECUREAUTH"))
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", cfg.GetString("mail.host"))
	assert.Equal(t, 1025, cfg.GetInt("mail.port"))
}

func TestNewViperFromBytes_Errors(t *testing.T) {
	_, err := NewViperFromBytes("", []byte(sample))
	assert.ErrorIs(t, err, ErrConfigType)

	_, err = NewViperFromBytes("yaml", []byte("app: [unclosed"))
	assert.Error(t, err)
}

func TestNewViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := NewViper(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.GetString("mail.host"))

	_, err = NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewViperFromBytes_Defaults(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample), WithDefaults(map[string]any{
		"modules.identity.password.enforce_strength":    true,
		"modules.identity.otp.revoke_previous_on_issue": false,
		"modules.identity.otp.ttl_minutes":              10,
	}))
	require.NoError(t, err)

	assert.True(t, cfg.GetBool("modules.identity.password.enforce_strength"))
	assert.True(t, cfg.GetBool("modules.identity.otp.revoke_previous_on_issue"), "file wins over default")
	assert.Equal(t, 5*time.Minute, cfg.GetMinute("modules.identity.otp.ttl_minutes"))
}
