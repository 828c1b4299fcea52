package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, ":3001", c.Server.Addr)
	assert.Equal(t, "/api", c.Server.BasePath)
	assert.Equal(t, []string{"*"}, c.Server.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout)
	assert.False(t, c.Metrics.Enabled)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.False(t, c.Admin.ResetEnabled)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, `
app:
  env: staging
log:
  level: debug
server:
  addr: ":9000"
  base_path: /v1
  cors_allowed_origins: ["http://localhost:5173"]
  read_timeout: 3s
metrics:
  enabled: true
admin:
  reset_enabled: true
seed:
  file: seed.yaml
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", c.App.Env)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, "/v1", c.Server.BasePath)
	assert.Equal(t, []string{"http://localhost:5173"}, c.Server.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, c.Server.ReadTimeout)
	assert.True(t, c.Metrics.Enabled)
	assert.True(t, c.Admin.ResetEnabled)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "seed.yaml"), c.Seed.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7000")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SERVER_WRITE_TIMEOUT", "1m")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "WARN")

	c, err := Load(writeYAML(t, "server:\n  addr: \":9000\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":7000", c.Server.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.Server.CORSAllowedOrigins)
	assert.Equal(t, time.Minute, c.Server.WriteTimeout)
	assert.True(t, c.Metrics.Enabled)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoad_ProdDisablesReset(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("ADMIN_RESET_ENABLED", "true")

	c, err := Load("")
	require.NoError(t, err)
	assert.True(t, c.IsProd())
	assert.False(t, c.Admin.ResetEnabled)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeYAML(t, "app:\n  env: qa\nlog:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.env")
	assert.Contains(t, err.Error(), "log.level")

	_, err = Load(writeYAML(t, "server: [1, 2"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestYAML_RoundTrip(t *testing.T) {
	raw, err := Default().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "base_path: /api")
}
