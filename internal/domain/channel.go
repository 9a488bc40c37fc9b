package domain

// ReadyState is the lifecycle phase of the control channel.
type ReadyState int32

// Control channel states, in the order a connection moves through them.
const (
	StateConnecting ReadyState = iota
	StateOpen
	StateClosing
	StateClosed
)

func (s ReadyState) String() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateOpen:
		return "OPEN"
	case StateClosing:
		return "CLOSING"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// HealthSnapshot is the liveness view of the control channel.
// OK and ConnectionOpen always carry the same value; both keys are kept
// for consumers of the existing healthcheck payload.
type HealthSnapshot struct {
	OK                bool   `json:"ok"`
	ConnectionOpen    bool   `json:"websocketConnectionOpen"`
	ControlChannelURL string `json:"brokerServerUrl"`
	Version           string `json:"version"`
}

// NewHealthSnapshot derives a snapshot from a channel state.
func NewHealthSnapshot(state ReadyState, url, version string) HealthSnapshot {
	open := state == StateOpen
	return HealthSnapshot{
		OK:                open,
		ConnectionOpen:    open,
		ControlChannelURL: url,
		Version:           version,
	}
}
