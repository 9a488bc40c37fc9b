// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (control channel, outbound HTTP, filter storage, metrics).
package out

import (
	"context"

	"github.com/wyc-thg/broker/internal/domain"
)

// ControlChannel is the read-only view of the persistent connection to the
// broker server. The adapter owns the connection; callers only observe it.
type ControlChannel interface {
	// State returns the current ready state. It must not block.
	State() domain.ReadyState

	// URL returns the configured broker server URL.
	URL() string

	// Close tears the connection down and stops reconnecting.
	Close(ctx context.Context) error
}
