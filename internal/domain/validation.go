package domain

import (
	"encoding/base64"
	"strings"
	"time"
)

// ValidationSettings is the raw probe configuration read from the process
// configuration. It holds secrets and must never be serialized.
type ValidationSettings struct {
	URL                 string
	Method              string
	TimeoutMs           int
	AuthorizationHeader string
	BasicAuth           string // "user:password"
	CACert              string // path to a PEM bundle
}

// Authorization returns the Authorization header value for the probe.
// An explicit header wins over basic auth; an empty string means no header.
func (s ValidationSettings) Authorization() string {
	if s.AuthorizationHeader != "" {
		return s.AuthorizationHeader
	}
	if s.BasicAuth != "" {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(s.BasicAuth))
	}
	return ""
}

// Secrets returns the credential values of the settings keyed by the
// environment name they are configured under.
func (s ValidationSettings) Secrets() map[string]string {
	secrets := map[string]string{}
	if s.AuthorizationHeader != "" {
		secrets["BROKER_CLIENT_VALIDATION_AUTHORIZATION_HEADER"] = s.AuthorizationHeader
		if _, credential, ok := strings.Cut(s.AuthorizationHeader, " "); ok && credential != "" {
			secrets["BROKER_CLIENT_VALIDATION_AUTHORIZATION_CREDENTIAL"] = credential
		}
	}
	if s.BasicAuth != "" {
		secrets["BROKER_CLIENT_VALIDATION_BASIC_AUTH"] = s.BasicAuth
		secrets["BROKER_CLIENT_VALIDATION_BASIC_AUTH_ENCODED"] = base64.StdEncoding.EncodeToString([]byte(s.BasicAuth))
		if _, password, ok := strings.Cut(s.BasicAuth, ":"); ok && password != "" {
			secrets["BROKER_CLIENT_VALIDATION_BASIC_AUTH_PASSWORD"] = password
		}
	}
	return secrets
}

// ValidationConfig is the resolved configuration of one probe run.
// TargetURL is the raw URL used to dial; DisplayURL is its sanitized form
// and the only one that is ever serialized.
type ValidationConfig struct {
	TargetURL  string `json:"-"`
	DisplayURL string `json:"brokerClientValidationUrl"`
	Method     string `json:"brokerClientValidationMethod"`
	TimeoutMs  int    `json:"brokerClientValidationTimeoutMs"`
}

// Timeout returns the probe deadline as a duration.
func (c ValidationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// ValidationOutcome is the classified result of a probe.
// StatusCode is zero when no response was received.
type ValidationOutcome struct {
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"brokerClientValidationUrlStatusCode,omitempty"`
}

// Outcome kinds, used as metric labels and CLI output.
const (
	OutcomeSuccess     = "success"
	OutcomeCredentials = "invalid_credentials"
	OutcomeStatus      = "bad_status"
	OutcomeTransport   = "transport_error"
)

// ProbeSuccess builds a successful outcome.
func ProbeSuccess(statusCode int) ValidationOutcome {
	return ValidationOutcome{OK: true, StatusCode: statusCode}
}

// ProbeFailure builds a failed outcome; statusCode 0 means no response.
func ProbeFailure(message string, statusCode int) ValidationOutcome {
	return ValidationOutcome{OK: false, Error: message, StatusCode: statusCode}
}

// ClassifyStatus maps a received HTTP status code to an outcome.
func ClassifyStatus(statusCode int) ValidationOutcome {
	switch {
	case statusCode >= 200 && statusCode <= 299:
		return ProbeSuccess(statusCode)
	case statusCode == 401 || statusCode == 403:
		return ProbeFailure(MsgInvalidCredentials, statusCode)
	default:
		return ProbeFailure(MsgStatusNot2xx, statusCode)
	}
}

// Kind reports which class of outcome o is.
func (o ValidationOutcome) Kind() string {
	switch {
	case o.OK:
		return OutcomeSuccess
	case o.StatusCode == 0:
		return OutcomeTransport
	case o.StatusCode == 401 || o.StatusCode == 403:
		return OutcomeCredentials
	default:
		return OutcomeStatus
	}
}

// SystemcheckResult merges the probe configuration and its outcome into
// the single JSON body served by the systemcheck endpoint.
type SystemcheckResult struct {
	ValidationConfig
	ValidationOutcome
}

// ProbeRequest is one outbound validation request.
type ProbeRequest struct {
	Method  string
	URL     string
	Headers map[string]string
}

// ProbeResponse is what the prober observed from the target.
type ProbeResponse struct {
	StatusCode int
	Body       []byte
}
