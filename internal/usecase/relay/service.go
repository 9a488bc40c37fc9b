// Package relay implements the catch-all route: requests accepted by the
// filter rules are forwarded to the origin, everything else is blocked.
package relay

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

// relayTransport is a shared HTTP transport with bounded timeouts.
var relayTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout:   10 * time.Second,
	ResponseHeaderTimeout: 30 * time.Second,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
}

// Service implements the RelayService interface.
type Service struct {
	origin        *url.URL
	display       string
	authorization string
	transport     http.RoundTripper
	log           zerolog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithTransport overrides the transport used to reach the origin.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Service) {
		s.transport = rt
	}
}

// NewService creates a relay to origin. authorization, when non-empty,
// replaces the Authorization header of every forwarded request.
func NewService(origin, authorization string, sanitizer *domain.Sanitizer, log zerolog.Logger, opts ...Option) (*Service, error) {
	if origin == "" {
		return nil, domain.ErrNoOriginDefined
	}
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidOrigin, sanitizer.Sanitize(origin))
	}

	s := &Service{
		origin:        u,
		display:       sanitizer.Sanitize(origin),
		authorization: authorization,
		transport:     relayTransport,
		log:           logging.UseCase(log, "relay"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Request returns the handler for requests not served by the status routes.
func (s *Service) Request(filters domain.FilterSet) http.Handler {
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(s.origin)
			pr.SetXForwarded()
			pr.Out.Host = s.origin.Host
			if s.authorization != "" {
				pr.Out.Header.Set("Authorization", s.authorization)
			}
		},
		Transport: s.transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			s.log.Error().
				Err(err).
				Str(logging.FieldMethod, r.Method).
				Str(logging.FieldPath, r.URL.Path).
				Str("origin", s.display).
				Msg("relay to origin failed")
			writeMessage(w, http.StatusBadGateway, "origin unavailable")
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !filters.Allows(r.Method, r.URL.Path) {
			Blocked(w, r)
			return
		}
		s.log.Debug().
			Str(logging.FieldMethod, r.Method).
			Str(logging.FieldPath, r.URL.Path).
			Msg("relaying request")
		proxy.ServeHTTP(w, r)
	})
}

// Blocked answers a request that no filter rule accepts.
func Blocked(w http.ResponseWriter, r *http.Request) {
	zerolog.Ctx(r.Context()).Debug().
		Str(logging.FieldMethod, r.Method).
		Str(logging.FieldPath, r.URL.Path).
		Msg("request blocked by filters")
	writeMessage(w, http.StatusUnauthorized, "blocked")
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
