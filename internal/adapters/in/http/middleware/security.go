package middleware

import "net/http"

// statusPagePolicy allows the inline stylesheet of the status page and nothing else.
const statusPagePolicy = "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none'"

// StatusHeaders sets the response headers of the status endpoints. Their
// bodies reflect live state and must not be cached.
func StatusHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", statusPagePolicy)
		h.Set("Cache-Control", "no-store")

		if r.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
