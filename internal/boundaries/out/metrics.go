package out

import (
	"time"

	"github.com/wyc-thg/broker/internal/domain"
)

// MetricsRecorder records operational metrics of the broker client.
type MetricsRecorder interface {
	// ObserveProbe records one completed validation probe.
	ObserveProbe(outcome domain.ValidationOutcome, elapsed time.Duration)

	// SetChannelState records the current control channel state.
	SetChannelState(state domain.ReadyState)
}
