// Package middleware provides HTTP middleware for the adapters layer.
package middleware

import (
	"encoding/json"
	"net/http"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/adapters/dto"
	"github.com/wyc-thg/broker/internal/logging"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// ResponseWriter wraps http.ResponseWriter to capture status code and bytes written.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	bytes       int
	wroteHeader bool
}

// NewResponseWriter creates a new wrapped response writer.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader captures the status code.
func (rw *ResponseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

// Write captures bytes written.
func (rw *ResponseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// StatusCode returns the captured status code.
func (rw *ResponseWriter) StatusCode() int { return rw.statusCode }

// BytesWritten returns the number of bytes written.
func (rw *ResponseWriter) BytesWritten() int { return rw.bytes }

// Flush implements http.Flusher; the relay streams through it.
func (rw *ResponseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the underlying ResponseWriter.
func (rw *ResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// RequestLogger logs every request and attaches a request-scoped logger to
// the context, retrievable with zerolog.Ctx. Proxy headers are honored only
// for peers in trusted.
func RequestLogger(log zerolog.Logger, trusted []netip.Prefix) func(http.Handler) http.Handler {
	log = logging.Adapter(log, "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLog := log.With().Str(logging.FieldRequestID, requestID).Logger()
			r = r.WithContext(reqLog.WithContext(r.Context()))

			rw := NewResponseWriter(w)
			next.ServeHTTP(rw, r)

			status := rw.StatusCode()
			ev := reqLog.Info()
			if status >= 500 {
				ev = reqLog.Warn()
			}
			ev.Str(logging.FieldMethod, r.Method).
				Str(logging.FieldPath, r.URL.Path).
				Str(logging.FieldClientIP, ClientIP(r, trusted)).
				Str("user_agent", r.UserAgent()).
				Int(logging.FieldStatus, status).
				Int("bytes", rw.BytesWritten()).
				Dur(logging.FieldDuration, time.Since(start)).
				Msg("HTTP request")
		})
	}
}

// PanicRecovery turns a panicking handler into a 500 response.
func PanicRecovery(log zerolog.Logger) func(http.Handler) http.Handler {
	log = logging.Adapter(log, "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error().
					Interface("panic", rec).
					Str(logging.FieldMethod, r.Method).
					Str(logging.FieldPath, r.URL.Path).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Internal Server Error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Chain combines multiple middleware functions; the first one is outermost.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
