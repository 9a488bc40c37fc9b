package in

import (
	"context"

	"github.com/wyc-thg/broker/internal/domain"
)

// SystemcheckService validates reachability of, and credentials against,
// the downstream service.
type SystemcheckService interface {
	// Run performs exactly one probe. Probe failures are reported in the
	// outcome; the error is non-nil only when the probe could not be
	// invoked at all (it wraps domain.ErrProbeUnavailable).
	Run(ctx context.Context) (domain.ValidationConfig, domain.ValidationOutcome, error)
}
