package out

import (
	"context"

	"github.com/wyc-thg/broker/internal/domain"
)

// HTTPProber issues a single outbound validation request.
// This allows for easy mocking in tests.
type HTTPProber interface {
	// Probe sends req and returns the observed status code and body.
	// Errors wrapping domain.ErrProbeUnavailable mean the request could not
	// be built; any other error is a transport failure.
	Probe(ctx context.Context, req domain.ProbeRequest) (*domain.ProbeResponse, error)
}
