// Package metrics records broker client metrics with Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/domain"
)

// Metric naming.
const (
	Namespace = "broker_client"

	SystemcheckSubsystem    = "systemcheck"
	ControlChannelSubsystem = "control_channel"

	LabelOutcome = "outcome"
	LabelState   = "state"
)

// Ensure Recorder implements out.MetricsRecorder.
var _ out.MetricsRecorder = (*Recorder)(nil)

var allStates = []domain.ReadyState{
	domain.StateConnecting,
	domain.StateOpen,
	domain.StateClosing,
	domain.StateClosed,
}

// Recorder owns a private registry so tests and embedders don't collide
// with the global one.
type Recorder struct {
	registry *prometheus.Registry

	probes        *prometheus.CounterVec
	probeDuration prometheus.Histogram
	channelState  *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: SystemcheckSubsystem,
			Name:      "probes_total",
			Help:      "Validation probes performed, by outcome.",
		}, []string{LabelOutcome}),
		probeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: SystemcheckSubsystem,
			Name:      "probe_duration_seconds",
			Help:      "Duration of validation probes.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		channelState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ControlChannelSubsystem,
			Name:      "state",
			Help:      "Current control channel state; 1 for the active state, 0 otherwise.",
		}, []string{LabelState}),
	}

	r.registry.MustRegister(
		r.probes,
		r.probeDuration,
		r.channelState,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for _, kind := range []string{domain.OutcomeSuccess, domain.OutcomeCredentials, domain.OutcomeStatus, domain.OutcomeTransport} {
		r.probes.WithLabelValues(kind)
	}
	r.SetChannelState(domain.StateConnecting)

	return r
}

// ObserveProbe records one completed probe.
func (r *Recorder) ObserveProbe(outcome domain.ValidationOutcome, elapsed time.Duration) {
	r.probes.WithLabelValues(outcome.Kind()).Inc()
	r.probeDuration.Observe(elapsed.Seconds())
}

// SetChannelState marks state as the active control channel state.
func (r *Recorder) SetChannelState(state domain.ReadyState) {
	for _, s := range allStates {
		v := 0.0
		if s == state {
			v = 1
		}
		r.channelState.WithLabelValues(s.String()).Set(v)
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
