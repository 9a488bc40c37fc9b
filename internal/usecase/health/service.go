// Package health implements the control channel liveness use case.
package health

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

// Service implements the HealthService interface.
type Service struct {
	channel   out.ControlChannel
	sanitizer *domain.Sanitizer
	version   string
	metrics   out.MetricsRecorder
	log       zerolog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithRecorder reports the observed channel state to a metrics recorder.
func WithRecorder(r out.MetricsRecorder) Option {
	return func(s *Service) {
		s.metrics = r
	}
}

// NewService creates a new health service.
func NewService(
	channel out.ControlChannel,
	sanitizer *domain.Sanitizer,
	version string,
	log zerolog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		channel:   channel,
		sanitizer: sanitizer,
		version:   version,
		log:       logging.UseCase(log, "health"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot reads the current control channel state without blocking.
func (s *Service) Snapshot(ctx context.Context) domain.HealthSnapshot {
	state := s.channel.State()
	if s.metrics != nil {
		s.metrics.SetChannelState(state)
	}

	snapshot := domain.NewHealthSnapshot(state, s.sanitizer.Sanitize(s.channel.URL()), s.version)

	if !snapshot.OK {
		s.log.Debug().
			Str("state", state.String()).
			Str(logging.FieldURL, snapshot.ControlChannelURL).
			Msg("control channel not open")
	}

	return snapshot
}
