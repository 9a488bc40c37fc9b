package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wyc-thg/broker/internal/adapters/in/http/status"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		Host            string   `mapstructure:"host"`
		Port            int      `mapstructure:"port"`
		HealthcheckPath string   `mapstructure:"healthcheck_path"`
		StatusPath      string   `mapstructure:"status_path"`
		SystemcheckPath string   `mapstructure:"systemcheck_path"`
		TrustedProxies  []string `mapstructure:"trusted_proxies"`
		RateLimit       struct {
			Enabled bool    `mapstructure:"enabled"`
			RPS     float64 `mapstructure:"rps"`
			Burst   int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"server"`

	Broker struct {
		ServerURL string `mapstructure:"server_url"`
		Token     string `mapstructure:"token"`
	} `mapstructure:"broker"`

	Validation struct {
		URL                 string `mapstructure:"url"`
		Method              string `mapstructure:"method"`
		TimeoutMs           int    `mapstructure:"timeout_ms"`
		AuthorizationHeader string `mapstructure:"authorization_header"`
		BasicAuth           string `mapstructure:"basic_auth"`
		CACert              string `mapstructure:"ca_cert"`
	} `mapstructure:"validation"`

	Relay struct {
		Origin string `mapstructure:"origin"`
		Accept string `mapstructure:"accept"`
	} `mapstructure:"relay"`

	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"metrics"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`
}

// legacyEnv maps config keys to the environment names existing broker
// deployments already set.
var legacyEnv = map[string]string{
	"server.port":                     "PORT",
	"server.healthcheck_path":         "BROKER_HEALTHCHECK_PATH",
	"server.status_path":              "BROKER_STATUS_PATH",
	"server.systemcheck_path":         "BROKER_SYSTEMCHECK_PATH",
	"broker.server_url":               "BROKER_SERVER_URL",
	"broker.token":                    "BROKER_TOKEN",
	"validation.url":                  "BROKER_CLIENT_VALIDATION_URL",
	"validation.method":               "BROKER_CLIENT_VALIDATION_METHOD",
	"validation.timeout_ms":           "BROKER_CLIENT_VALIDATION_TIMEOUT_MS",
	"validation.authorization_header": "BROKER_CLIENT_VALIDATION_AUTHORIZATION_HEADER",
	"validation.basic_auth":           "BROKER_CLIENT_VALIDATION_BASIC_AUTH",
	"validation.ca_cert":              "CA_CERT",
	"relay.origin":                    "ORIGIN",
	"relay.accept":                    "ACCEPT",
}

// LoadConfig reads .env (if present), the config file and the environment.
func LoadConfig(configPath string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: .env: %v", domain.ErrConfigLoadFailed, err)
	}

	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrConfigLoadFailed, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to unmarshal config: %v", domain.ErrConfigLoadFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadConfig sets defaults, reads the config file and binds the environment.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.healthcheck_path", "/healthcheck")
	v.SetDefault("server.status_path", "/status")
	v.SetDefault("server.systemcheck_path", "/systemcheck")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.rate_limit.enabled", true)
	v.SetDefault("server.rate_limit.rps", 1)
	v.SetDefault("server.rate_limit.burst", 5)
	v.SetDefault("broker.server_url", "")
	v.SetDefault("broker.token", "")
	v.SetDefault("validation.url", "")
	v.SetDefault("validation.method", "GET")
	v.SetDefault("validation.timeout_ms", 5000)
	v.SetDefault("validation.authorization_header", "")
	v.SetDefault("validation.basic_auth", "")
	v.SetDefault("validation.ca_cert", "")
	v.SetDefault("relay.origin", "")
	v.SetDefault("relay.accept", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "broker.log")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	replacer := strings.NewReplacer(".", "_")
	v.SetEnvPrefix("BROKER")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	// An explicit binding replaces the automatic name, so both are listed.
	// The legacy name wins when both are set.
	for key, env := range legacyEnv {
		prefixed := "BROKER_" + strings.ToUpper(replacer.Replace(key))
		if err := v.BindEnv(key, env, prefixed); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return nil
}

// Validate checks ranges and path shapes. BROKER_SERVER_URL is only
// required by the serve command and is checked there.
func (c Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", domain.ErrInvalidConfig, c.Server.Port)
	}
	for name, p := range map[string]string{
		"healthcheck": c.Server.HealthcheckPath,
		"status":      c.Server.StatusPath,
		"systemcheck": c.Server.SystemcheckPath,
	} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: %s path %q must start with /", domain.ErrInvalidConfig, name, p)
		}
	}
	return nil
}

// Addr is the listen address of the web server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Paths returns the status endpoint mount points.
func (c Config) Paths() status.Paths {
	return status.Paths{
		Healthcheck: c.Server.HealthcheckPath,
		Status:      c.Server.StatusPath,
		Systemcheck: c.Server.SystemcheckPath,
	}
}

// ValidationSettings returns the raw probe settings.
func (c Config) ValidationSettings() domain.ValidationSettings {
	return domain.ValidationSettings{
		URL:                 c.Validation.URL,
		Method:              c.Validation.Method,
		TimeoutMs:           c.Validation.TimeoutMs,
		AuthorizationHeader: c.Validation.AuthorizationHeader,
		BasicAuth:           c.Validation.BasicAuth,
		CACert:              c.Validation.CACert,
	}
}

// Secrets returns every configured credential keyed by its environment name.
func (c Config) Secrets() map[string]string {
	secrets := c.ValidationSettings().Secrets()
	if c.Broker.Token != "" {
		secrets["BROKER_TOKEN"] = c.Broker.Token
	}
	return secrets
}

// ConfigEntries lists the non-empty settings, sanitized, sorted by name.
func (c Config) ConfigEntries(sanitizer *domain.Sanitizer) []domain.ConfigEntry {
	values := map[string]string{
		"PORT":                                strconv.Itoa(c.Server.Port),
		"BROKER_HEALTHCHECK_PATH":             c.Server.HealthcheckPath,
		"BROKER_STATUS_PATH":                  c.Server.StatusPath,
		"BROKER_SYSTEMCHECK_PATH":             c.Server.SystemcheckPath,
		"BROKER_SERVER_URL":                   c.Broker.ServerURL,
		"BROKER_TOKEN":                        c.Broker.Token,
		"BROKER_CLIENT_VALIDATION_URL":        c.Validation.URL,
		"BROKER_CLIENT_VALIDATION_METHOD":     c.Validation.Method,
		"BROKER_CLIENT_VALIDATION_TIMEOUT_MS": strconv.Itoa(c.Validation.TimeoutMs),
		"BROKER_CLIENT_VALIDATION_BASIC_AUTH": c.Validation.BasicAuth,
		"CA_CERT":                             c.Validation.CACert,
		"ORIGIN":                              c.Relay.Origin,
		"ACCEPT":                              c.Relay.Accept,
		"BROKER_CLIENT_VALIDATION_AUTHORIZATION_HEADER": c.Validation.AuthorizationHeader,
	}

	entries := make([]domain.ConfigEntry, 0, len(values))
	for key, value := range values {
		if value == "" {
			continue
		}
		entries = append(entries, domain.ConfigEntry{Key: key, Value: sanitizer.Sanitize(value)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// LoggingConfig maps the logging section to the logger settings.
func (c Config) LoggingConfig() logging.Config {
	lc := logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	}
	if c.Logging.File.Enabled {
		lc.File = c.Logging.File.Path
		lc.MaxSize = c.Logging.File.MaxSize
		lc.MaxBackups = c.Logging.File.MaxBackups
		lc.MaxAge = c.Logging.File.MaxAge
		lc.Compress = true
	}
	return lc
}
