// Package status composes control channel liveness and the systemcheck into
// the status surfaces.
package status

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/boundaries/in"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

// Service implements the StatusService interface.
type Service struct {
	health   in.HealthService
	check    in.SystemcheckService
	settings []domain.ConfigEntry
	log      zerolog.Logger
}

// NewService creates a new status service. settings must already be sanitized.
func NewService(
	health in.HealthService,
	check in.SystemcheckService,
	settings []domain.ConfigEntry,
	log zerolog.Logger,
) *Service {
	return &Service{
		health:   health,
		check:    check,
		settings: settings,
		log:      logging.UseCase(log, "status"),
	}
}

// Liveness returns the current health snapshot.
func (s *Service) Liveness(ctx context.Context) domain.HealthSnapshot {
	return s.health.Snapshot(ctx)
}

// Systemcheck runs the probe and merges its configuration and outcome.
func (s *Service) Systemcheck(ctx context.Context) (domain.SystemcheckResult, error) {
	cfg, outcome, err := s.check.Run(ctx)
	if err != nil {
		return domain.SystemcheckResult{ValidationConfig: cfg}, err
	}
	return domain.SystemcheckResult{ValidationConfig: cfg, ValidationOutcome: outcome}, nil
}

// StatusPage gathers everything the status page shows. A probe that could
// not be performed is shown as a failed outcome.
func (s *Service) StatusPage(ctx context.Context) domain.StatusPage {
	cfg, outcome, err := s.check.Run(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("systemcheck unavailable for status page")
		outcome = domain.ProbeFailure(err.Error(), 0)
	}

	settings := make([]domain.ConfigEntry, len(s.settings))
	copy(settings, s.settings)

	return domain.StatusPage{
		Health:   s.health.Snapshot(ctx),
		Config:   cfg,
		Outcome:  outcome,
		Settings: settings,
	}
}
