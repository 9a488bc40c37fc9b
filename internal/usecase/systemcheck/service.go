// Package systemcheck implements the downstream validation probe use case.
package systemcheck

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

// maxLoggedBody bounds the response body attached to failure logs.
const maxLoggedBody = 4 << 10

// Service implements the SystemcheckService interface.
type Service struct {
	prober        out.HTTPProber
	config        domain.ValidationConfig
	authorization string
	userAgent     string
	sanitizer     *domain.Sanitizer
	metrics       out.MetricsRecorder
	log           zerolog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithRecorder reports every completed probe to a metrics recorder.
func WithRecorder(r out.MetricsRecorder) Option {
	return func(s *Service) {
		s.metrics = r
	}
}

// NewService creates a new systemcheck service. The configuration is
// resolved once; secrets in settings are only kept as the outgoing header.
func NewService(
	prober out.HTTPProber,
	settings domain.ValidationSettings,
	sanitizer *domain.Sanitizer,
	userAgent string,
	log zerolog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		prober:        prober,
		config:        Resolve(settings, sanitizer),
		authorization: settings.Authorization(),
		userAgent:     userAgent,
		sanitizer:     sanitizer,
		log:           logging.UseCase(log, "systemcheck"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the resolved probe configuration.
func (s *Service) Config() domain.ValidationConfig {
	return s.config
}

// Run performs exactly one probe against the validation URL.
func (s *Service) Run(ctx context.Context) (domain.ValidationConfig, domain.ValidationOutcome, error) {
	cfg := s.config
	log := s.log.With().
		Str(logging.FieldMethod, cfg.Method).
		Str(logging.FieldURL, cfg.DisplayURL).
		Logger()

	if cfg.TargetURL == "" {
		log.Warn().Msg("systemcheck skipped, validation URL is not configured")
		outcome := domain.ProbeFailure(domain.MsgNoValidationURL, 0)
		s.observe(outcome, 0)
		return cfg, outcome, nil
	}

	headers := map[string]string{"User-Agent": s.userAgent}
	if s.authorization != "" {
		headers["Authorization"] = s.authorization
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	start := time.Now()
	resp, err := s.prober.Probe(ctx, domain.ProbeRequest{
		Method:  cfg.Method,
		URL:     cfg.TargetURL,
		Headers: headers,
	})
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, domain.ErrProbeUnavailable) {
			err = s.sanitizer.Error(err)
			log.Error().Err(err).Msg("systemcheck could not be performed")
			return cfg, domain.ValidationOutcome{}, err
		}

		outcome := domain.ProbeFailure(s.sanitizer.Sanitize(transportMessage(err)), 0)
		log.Error().
			Str("error", outcome.Error).
			Dur("elapsed", elapsed).
			Msg("systemcheck failed, could not reach validation URL")
		s.observe(outcome, elapsed)
		return cfg, outcome, nil
	}

	outcome := domain.ClassifyStatus(resp.StatusCode)
	if outcome.OK {
		log.Info().
			Int(logging.FieldStatus, resp.StatusCode).
			Dur("elapsed", elapsed).
			Msg("systemcheck succeeded")
	} else {
		log.Error().
			Int(logging.FieldStatus, resp.StatusCode).
			Str("response_body", truncate(s.sanitizer.Sanitize(string(resp.Body)), maxLoggedBody)).
			Dur("elapsed", elapsed).
			Msg("systemcheck failed")
	}

	s.observe(outcome, elapsed)
	return cfg, outcome, nil
}

func (s *Service) observe(outcome domain.ValidationOutcome, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveProbe(outcome, elapsed)
	}
}

// transportMessage strips the "Get <url>:" prefix net/http adds, which
// would otherwise repeat the raw target URL.
func transportMessage(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		if errors.Is(uerr.Err, context.DeadlineExceeded) {
			return "request timed out"
		}
		return uerr.Err.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}

func truncate(body string, limit int) string {
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "...(truncated)"
}
