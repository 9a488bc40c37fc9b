// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	// Adapters - Input
	"github.com/wyc-thg/broker/internal/adapters/in/http/middleware"
	"github.com/wyc-thg/broker/internal/adapters/in/http/server"
	"github.com/wyc-thg/broker/internal/adapters/in/http/status"

	// Adapters - Output
	"github.com/wyc-thg/broker/internal/adapters/out/controlchannel"
	"github.com/wyc-thg/broker/internal/adapters/out/filterfile"
	"github.com/wyc-thg/broker/internal/adapters/out/httpprober"
	"github.com/wyc-thg/broker/internal/adapters/out/metrics"
	"github.com/wyc-thg/broker/internal/adapters/out/ratelimit"

	// Domain
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"

	// Use cases
	"github.com/wyc-thg/broker/internal/usecase/health"
	"github.com/wyc-thg/broker/internal/usecase/relay"
	statususecase "github.com/wyc-thg/broker/internal/usecase/status"
	"github.com/wyc-thg/broker/internal/usecase/systemcheck"

	"github.com/wyc-thg/broker/pkg/version"
)

// shutdownGrace bounds the control channel close after the server stops.
const shutdownGrace = 5 * time.Second

// Run loads the configuration and serves until SIGINT or SIGTERM.
func Run(ctx context.Context, configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	log, cleanup, err := logging.Setup(cfg.LoggingConfig(), os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, log)
}

func run(ctx context.Context, cfg Config, log zerolog.Logger) error {
	if cfg.Broker.ServerURL == "" {
		return fmt.Errorf("%w: BROKER_SERVER_URL is required", domain.ErrInvalidConfig)
	}

	log.Info().
		Str("version", version.Version()).
		Str("commit", version.Commit()).
		Msg("starting broker client")

	sanitizer := domain.NewSanitizer(cfg.Secrets())
	recorder := metrics.NewRecorder()

	channel, err := controlchannel.New(cfg.Broker.ServerURL, log,
		controlchannel.WithToken(cfg.Broker.Token),
		controlchannel.WithUserAgent(version.UserAgent()),
		controlchannel.WithSanitizer(sanitizer),
		controlchannel.WithStateHook(recorder.SetChannelState),
	)
	if err != nil {
		return err
	}

	prober := newProber(cfg, log)

	healthSvc := health.NewService(channel, sanitizer, version.Version(), log, health.WithRecorder(recorder))
	checkSvc := systemcheck.NewService(prober, cfg.ValidationSettings(), sanitizer, version.UserAgent(), log,
		systemcheck.WithRecorder(recorder))
	statusSvc := statususecase.NewService(healthSvc, checkSvc, cfg.ConfigEntries(sanitizer), log)

	trusted, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	srv := server.New(cfg.Addr(), log,
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, trusted),
	)

	status.NewHandler(statusSvc, log).RegisterRoutes(
		secureRouter{srv},
		cfg.Paths(),
		systemcheckLimiter(cfg, trusted, log),
	)

	if cfg.Metrics.Enabled {
		srv.Handle(http.MethodGet, cfg.Metrics.Path, recorder.Handler())
	}

	fallback, err := createRelay(ctx, cfg, sanitizer, log)
	if err != nil {
		return err
	}
	srv.Fallback(fallback)

	channel.Start(ctx)

	serveErr := srv.Start(ctx)

	// The web server is down before the control channel goes away.
	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := channel.Close(closeCtx); err != nil {
		log.Warn().Err(err).Msg("control channel did not close cleanly")
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	log.Info().Msg("broker client stopped")
	return nil
}

// newProber builds the outbound prober. A CA bundle that fails to load is
// reported on every systemcheck, not at startup.
func newProber(cfg Config, log zerolog.Logger) *httpprober.Prober {
	var opts []httpprober.Option
	if cfg.Validation.CACert != "" {
		opts = append(opts, httpprober.WithCACertFile(cfg.Validation.CACert))
	}
	prober := httpprober.New(opts...)
	if err := prober.Err(); err != nil {
		log.Warn().Err(err).Str("ca_cert", cfg.Validation.CACert).Msg("systemcheck will fail until CA_CERT is fixed")
	}
	return prober
}

func systemcheckLimiter(cfg Config, trusted []netip.Prefix, log zerolog.Logger) func(http.Handler) http.Handler {
	if !cfg.Server.RateLimit.Enabled {
		return nil
	}
	store := ratelimit.NewMemoryStore(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, log)
	return middleware.RateLimit(store, "systemcheck", trusted, log)
}

// createRelay returns the catch-all handler. Without ORIGIN every request
// outside the status routes is blocked.
func createRelay(ctx context.Context, cfg Config, sanitizer *domain.Sanitizer, log zerolog.Logger) (http.Handler, error) {
	if cfg.Relay.Origin == "" {
		log.Warn().Msg("ORIGIN not set, relay disabled")
		return http.HandlerFunc(relay.Blocked), nil
	}

	filters, err := filterfile.NewLoader(cfg.Relay.Accept, log).Load(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := relay.NewService(cfg.Relay.Origin, cfg.ValidationSettings().Authorization(), sanitizer, log)
	if err != nil {
		return nil, err
	}
	return svc.Request(filters), nil
}

// secureRouter adds the status page response headers to every route it
// registers.
type secureRouter struct {
	srv *server.Server
}

func (r secureRouter) Handle(method, path string, h http.Handler) {
	r.srv.Handle(method, path, middleware.StatusHeaders(h))
}
