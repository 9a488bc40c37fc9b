package in

import (
	"context"

	"github.com/wyc-thg/broker/internal/domain"
)

// StatusService composes liveness and systemcheck into the status surfaces.
type StatusService interface {
	// Liveness returns the current health snapshot.
	Liveness(ctx context.Context) domain.HealthSnapshot

	// Systemcheck runs the probe and merges config and outcome.
	// The error is non-nil only when the probe could not be invoked.
	Systemcheck(ctx context.Context) (domain.SystemcheckResult, error)

	// StatusPage builds the human-readable page model. It never fails.
	StatusPage(ctx context.Context) domain.StatusPage
}
