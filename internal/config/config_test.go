package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  rest_port: 9090
logging:
  level: debug
  dir: /tmp/blockreg-logs
  file: false
telemetry:
  enabled: true
  service_name: blocks
  endpoint: collector:4318
lookup:
  fuzzy: true
cache:
  backend: redis
  redis_url: localhost:6379
  default_ttl: 90s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Server.GetRESTPort())
	assert.Equal(t, "debug", cfg.Logging.GetLevel())
	assert.Equal(t, "DEBUG", cfg.Logging.GetFileLevel())
	assert.Equal(t, "/tmp/blockreg-logs", cfg.Logging.GetDir())
	assert.False(t, cfg.Logging.FileEnabled())
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "blocks", cfg.Telemetry.GetServiceName())
	assert.Equal(t, "collector:4318", cfg.Telemetry.GetEndpoint())
	assert.True(t, cfg.Lookup.Fuzzy)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisURL)
	assert.Equal(t, 90*time.Second, cfg.Cache.DefaultTTL)
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv("BLOCKREG_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = LoadOrDefault("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Logging.FileEnabled())
}

func TestLoadFromEnvPath(t *testing.T) {
	path := writeConfig(t, "server:\n  rest_port: 7000\n")
	t.Setenv("BLOCKREG_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 7000, cfg.Server.RESTPort)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not, a, map"))
	assert.Error(t, err)
}

func TestPortFallback(t *testing.T) {
	var s ServerConfig

	t.Setenv("BLOCKREG_REST_PORT", "")
	assert.Equal(t, 8088, s.GetRESTPort())

	t.Setenv("BLOCKREG_REST_PORT", "9191")
	assert.Equal(t, 9191, s.GetRESTPort())

	t.Setenv("BLOCKREG_REST_PORT", "not-a-port")
	assert.Equal(t, 8088, s.GetRESTPort())

	s.RESTPort = 1234
	assert.Equal(t, 1234, s.GetRESTPort())
}

func TestStringFallback(t *testing.T) {
	var l LoggingConfig
	var tc TelemetryConfig

	t.Setenv("BLOCKREG_LOG_LEVEL", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("BLOCKREG_OTLP_ENDPOINT", "")
	assert.Equal(t, "INFO", l.GetLevel())
	assert.Equal(t, "blockreg", tc.GetServiceName())
	assert.Empty(t, tc.GetEndpoint())

	t.Setenv("BLOCKREG_LOG_LEVEL", "warn")
	assert.Equal(t, "warn", l.GetLevel())
}
