package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyc-thg/broker/internal/adapters/in/http/server"
	"github.com/wyc-thg/broker/internal/domain"
)

func TestRun_RequiresServerURL(t *testing.T) {
	var cfg Config
	err := run(context.Background(), cfg, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestRun_RejectsBadTrustedProxies(t *testing.T) {
	var cfg Config
	cfg.Broker.ServerURL = "https://broker.example.com"
	cfg.Server.TrustedProxies = []string{"not-a-cidr"}

	err := run(context.Background(), cfg, zerolog.Nop())
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCreateRelay(t *testing.T) {
	t.Run("no origin blocks", func(t *testing.T) {
		var cfg Config
		h, err := createRelay(context.Background(), cfg, nil, zerolog.Nop())
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/x", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("filters relay to origin", func(t *testing.T) {
		origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Basic dXNlcjpwYXNz", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusTeapot)
		}))
		defer origin.Close()

		accept := filepath.Join(t.TempDir(), "accept.yaml")
		require.NoError(t, os.WriteFile(accept, []byte("private:\n  - method: GET\n    path: /repos/**\n"), 0o600))

		var cfg Config
		cfg.Relay.Origin = origin.URL
		cfg.Relay.Accept = accept
		cfg.Validation.BasicAuth = "user:pass"

		h, err := createRelay(context.Background(), cfg, nil, zerolog.Nop())
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/a/b", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/repos/a/b", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing filter file", func(t *testing.T) {
		var cfg Config
		cfg.Relay.Origin = "https://scm.example.com"
		cfg.Relay.Accept = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := createRelay(context.Background(), cfg, nil, zerolog.Nop())
		assert.ErrorIs(t, err, domain.ErrFilterLoad)
	})
}

func TestSystemcheckLimiter(t *testing.T) {
	var cfg Config
	assert.Nil(t, systemcheckLimiter(cfg, nil, zerolog.Nop()))

	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.RPS = 0.001
	cfg.Server.RateLimit.Burst = 1
	wrap := systemcheckLimiter(cfg, nil, zerolog.Nop())
	require.NotNil(t, wrap)

	h := wrap(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/systemcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/systemcheck", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSecureRouter(t *testing.T) {
	srv := server.New(":0", zerolog.Nop())
	secureRouter{srv}.Handle(http.MethodGet, "/status", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestSystemcheck(t *testing.T) {
	scm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token s3cr3t", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusForbidden)
	}))
	defer scm.Close()

	path := writeConfig(t, fmt.Sprintf(`
validation:
  url: %s/user
  authorization_header: token s3cr3t
logging:
  level: disabled
`, scm.URL))

	result, err := Systemcheck(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
	assert.Equal(t, domain.MsgInvalidCredentials, result.Error)
	assert.Equal(t, scm.URL+"/user", result.DisplayURL)
}
