package domain

import "errors"

// Domain errors represent business-level errors that can occur in the broker client.
var (
	// Systemcheck errors
	ErrProbeUnavailable = errors.New("validation probe unavailable")

	// Relay errors
	ErrInvalidFilter   = errors.New("invalid filter rule")
	ErrFilterLoad      = errors.New("failed to load filter rules")
	ErrInvalidOrigin   = errors.New("invalid origin URL")
	ErrNoOriginDefined = errors.New("no origin configured for relay")

	// Config errors
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigLoadFailed = errors.New("failed to load configuration")
)

// Messages reported by a failed validation probe.
const (
	MsgInvalidCredentials = "Failed due to invalid credentials"
	MsgStatusNot2xx       = "Status code is not 2xx"
	MsgNoValidationURL    = "Validation URL is not configured"
)

// RedactedError carries a sanitized message while keeping the wrapped
// error chain reachable through errors.Is and errors.As.
type RedactedError struct {
	Msg string
	Err error
}

func (e *RedactedError) Error() string { return e.Msg }

func (e *RedactedError) Unwrap() error { return e.Err }
