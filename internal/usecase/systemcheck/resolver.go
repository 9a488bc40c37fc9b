package systemcheck

import (
	"strings"

	"github.com/wyc-thg/broker/internal/domain"
)

// Defaults applied when the probe settings leave a field unset.
const (
	DefaultMethod    = "GET"
	DefaultTimeoutMs = 5000
)

// Resolve derives the probe configuration from the raw settings. It never
// fails and performs no I/O.
func Resolve(settings domain.ValidationSettings, sanitizer *domain.Sanitizer) domain.ValidationConfig {
	method := strings.ToUpper(strings.TrimSpace(settings.Method))
	if method == "" {
		method = DefaultMethod
	}

	timeoutMs := settings.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = DefaultTimeoutMs
	}

	return domain.ValidationConfig{
		TargetURL:  settings.URL,
		DisplayURL: sanitizer.Sanitize(settings.URL),
		Method:     method,
		TimeoutMs:  timeoutMs,
	}
}
