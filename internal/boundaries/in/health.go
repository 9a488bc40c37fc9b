// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/wyc-thg/broker/internal/domain"
)

// HealthService reports the liveness of the control channel.
type HealthService interface {
	// Snapshot reads the control channel state. It never blocks.
	Snapshot(ctx context.Context) domain.HealthSnapshot
}
