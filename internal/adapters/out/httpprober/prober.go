// Package httpprober issues the outbound validation request of the systemcheck.
package httpprober

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/wyc-thg/broker/internal/domain"
)

// DefaultTimeout bounds a probe whose context carries no deadline.
// A caller deadline always takes precedence, longer or shorter.
const DefaultTimeout = 30 * time.Second

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 64 << 10

// Prober implements the HTTPProber interface.
type Prober struct {
	client  *http.Client
	timeout time.Duration
	caCert  string
	err     error
}

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout sets the deadline applied when the caller's context has none.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// WithCACertFile adds the PEM certificates in path to the trusted roots.
// An unreadable or invalid file makes every probe fail with
// domain.ErrProbeUnavailable.
func WithCACertFile(path string) Option {
	return func(p *Prober) {
		p.caCert = path
	}
}

// New creates a new HTTP prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client != nil {
		return p
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	if p.caCert != "" {
		pool, err := loadCertPool(p.caCert)
		if err != nil {
			p.err = err
		} else {
			transport.TLSClientConfig = &tls.Config{
				RootCAs:    pool,
				MinVersion: tls.VersionTLS12,
			}
		}
	}

	p.client = &http.Client{
		Transport: transport,
		// Don't follow redirects - a 3xx is reported as such
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return p
}

// Err returns the setup error, if any.
func (p *Prober) Err() error {
	return p.err
}

// Probe sends one request and returns its status code and body.
func (p *Prober) Probe(ctx context.Context, preq domain.ProbeRequest) (*domain.ProbeResponse, error) {
	if p.err != nil {
		return nil, p.err
	}

	if _, ok := ctx.Deadline(); !ok && p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, preq.Method, preq.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrProbeUnavailable, unwrapURLError(err))
	}
	for name, value := range preq.Headers {
		req.Header.Set(name, value)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		// The status line arrived; a short body does not change the result.
		body = nil
	}

	return &domain.ProbeResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func loadCertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CA certificate: %v", domain.ErrProbeUnavailable, err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: no certificates found in %s", domain.ErrProbeUnavailable, path)
	}
	return pool, nil
}

// unwrapURLError drops the url.Error prefix, which repeats the raw URL.
func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err
	}
	return err
}
