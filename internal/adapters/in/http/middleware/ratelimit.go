package middleware

import (
	"encoding/json"
	"net/http"
	"net/netip"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/adapters/dto"
	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/logging"
)

// RateLimit rejects requests beyond the per-client allowance of limiter with
// 429. The key is "<scope>:ip:<client ip>".
func RateLimit(limiter out.RateLimiter, scope string, trusted []netip.Prefix, log zerolog.Logger) func(http.Handler) http.Handler {
	log = logging.Adapter(log, "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := ClientIP(r, trusted)
			if limiter.Allow(r.Context(), scope+":ip:"+clientIP) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn().
				Str(logging.FieldPath, r.URL.Path).
				Str(logging.FieldClientIP, clientIP).
				Msg("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Too Many Requests"})
		})
	}
}
