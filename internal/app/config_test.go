package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyc-thg/broker/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "broker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "/healthcheck", cfg.Server.HealthcheckPath)
	assert.Equal(t, "/status", cfg.Server.StatusPath)
	assert.Equal(t, "/systemcheck", cfg.Server.SystemcheckPath)
	assert.Equal(t, "GET", cfg.Validation.Method)
	assert.Equal(t, 5000, cfg.Validation.TimeoutMs)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  status_path: /broker-status
broker:
  server_url: https://broker.example.com
validation:
  url: https://scm.example.com/api
  method: head
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/broker-status", cfg.Paths().Status)
	assert.Equal(t, "/healthcheck", cfg.Paths().Healthcheck)
	assert.Equal(t, "https://broker.example.com", cfg.Broker.ServerURL)
	assert.Equal(t, "https://scm.example.com/api", cfg.Validation.URL)
	assert.Equal(t, "head", cfg.Validation.Method)
}

func TestLoadConfig_LegacyEnvironment(t *testing.T) {
	t.Setenv("PORT", "7341")
	t.Setenv("BROKER_SERVER_URL", "https://broker.example.com")
	t.Setenv("BROKER_TOKEN", "tok-123")
	t.Setenv("BROKER_CLIENT_VALIDATION_URL", "https://scm.example.com/user")
	t.Setenv("BROKER_CLIENT_VALIDATION_METHOD", "POST")
	t.Setenv("BROKER_CLIENT_VALIDATION_TIMEOUT_MS", "1500")
	t.Setenv("BROKER_CLIENT_VALIDATION_BASIC_AUTH", "user:pass")
	t.Setenv("BROKER_HEALTHCHECK_PATH", "/hc")
	t.Setenv("CA_CERT", "/etc/ssl/ca.pem")
	t.Setenv("ORIGIN", "https://scm.example.com")
	t.Setenv("ACCEPT", "accept.yaml")

	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: 9000\n"))
	require.NoError(t, err)

	assert.Equal(t, 7341, cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "https://broker.example.com", cfg.Broker.ServerURL)
	assert.Equal(t, "tok-123", cfg.Broker.Token)
	assert.Equal(t, "/hc", cfg.Server.HealthcheckPath)
	assert.Equal(t, "https://scm.example.com", cfg.Relay.Origin)
	assert.Equal(t, "accept.yaml", cfg.Relay.Accept)

	settings := cfg.ValidationSettings()
	assert.Equal(t, "https://scm.example.com/user", settings.URL)
	assert.Equal(t, "POST", settings.Method)
	assert.Equal(t, 1500, settings.TimeoutMs)
	assert.Equal(t, "user:pass", settings.BasicAuth)
	assert.Equal(t, "/etc/ssl/ca.pem", settings.CACert)
}

func TestLoadConfig_PrefixedEnvironment(t *testing.T) {
	t.Setenv("BROKER_LOGGING_LEVEL", "debug")
	t.Setenv("BROKER_METRICS_ENABLED", "false")

	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_PrefixedNameForLegacyKey(t *testing.T) {
	t.Setenv("BROKER_SERVER_PORT", "9100")

	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)

	t.Setenv("PORT", "9200")

	cfg, err = LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.Port, "legacy name wins")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, domain.ErrConfigLoadFailed)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("BROKER_CLIENT_VALIDATION_TIMEOUT_MS", "soon")
		_, err := LoadConfig(writeConfig(t, "{}\n"))
		assert.ErrorIs(t, err, domain.ErrConfigLoadFailed)
	})

	t.Run("relative path", func(t *testing.T) {
		t.Setenv("BROKER_STATUS_PATH", "status")
		_, err := LoadConfig(writeConfig(t, "{}\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig(writeConfig(t, "{}\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestConfig_Secrets(t *testing.T) {
	var cfg Config
	cfg.Broker.Token = "tok-123"
	cfg.Validation.BasicAuth = "user:pass"

	secrets := cfg.Secrets()
	assert.Equal(t, "tok-123", secrets["BROKER_TOKEN"])
	assert.Equal(t, "user:pass", secrets["BROKER_CLIENT_VALIDATION_BASIC_AUTH"])

	cfg.Broker.Token = ""
	assert.NotContains(t, cfg.Secrets(), "BROKER_TOKEN")
}

func TestConfig_ConfigEntries(t *testing.T) {
	var cfg Config
	cfg.Server.Port = 8000
	cfg.Server.HealthcheckPath = "/healthcheck"
	cfg.Broker.Token = "tok-123"
	cfg.Validation.URL = "https://user:pw@scm.example.com/api?token=tok-123"
	cfg.Validation.TimeoutMs = 5000

	entries := cfg.ConfigEntries(domain.NewSanitizer(cfg.Secrets()))

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		assert.NotContains(t, e.Value, "tok-123", e.Key)
		assert.NotContains(t, e.Value, "user:pw", e.Key)
	}
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "BROKER_TOKEN")
	assert.Contains(t, keys, "BROKER_CLIENT_VALIDATION_URL")
	assert.NotContains(t, keys, "ORIGIN", "empty settings are omitted")
}

func TestConfig_LoggingConfig(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "warn"
	cfg.Logging.File.Path = "/var/log/broker.log"

	assert.Empty(t, cfg.LoggingConfig().File)

	cfg.Logging.File.Enabled = true
	cfg.Logging.File.MaxSize = 10
	lc := cfg.LoggingConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "/var/log/broker.log", lc.File)
	assert.Equal(t, 10, lc.MaxSize)
	assert.True(t, lc.Compress)
}
