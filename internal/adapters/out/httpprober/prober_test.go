package httpprober

import (
	"context"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyc-thg/broker/internal/domain"
)

func TestProber_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "broker-client/test", r.UserAgent())
		assert.Equal(t, "token abc", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	p := New()
	require.NoError(t, p.Err())

	resp, err := p.Probe(context.Background(), domain.ProbeRequest{
		Method: http.MethodHead,
		URL:    server.URL,
		Headers: map[string]string{
			"User-Agent":    "broker-client/test",
			"Authorization": "token abc",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestProber_Probe_ReadsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	resp, err := New().Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Bad credentials"}`, string(resp.Body))
}

func TestProber_Probe_DoesNotFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	resp, err := New().Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestProber_Probe_InvalidMethod(t *testing.T) {
	_, err := New().Probe(context.Background(), domain.ProbeRequest{Method: "GE T", URL: "http://localhost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProbeUnavailable)
}

func TestProber_Probe_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := New().Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: url})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProbeUnavailable)
}

func TestProber_CACert(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Run("untrusted without CA", func(t *testing.T) {
		_, err := New().Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: server.URL})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrProbeUnavailable)
	})

	t.Run("trusted with CA file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		block := &pem.Block{Type: "CERTIFICATE", Bytes: server.Certificate().Raw}
		require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0600))

		p := New(WithCACertFile(path))
		require.NoError(t, p.Err())

		resp, err := p.Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing CA file", func(t *testing.T) {
		p := New(WithCACertFile(filepath.Join(t.TempDir(), "missing.pem")))
		require.ErrorIs(t, p.Err(), domain.ErrProbeUnavailable)

		_, err := p.Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: server.URL})
		assert.ErrorIs(t, err, domain.ErrProbeUnavailable)
	})

	t.Run("invalid CA file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0600))

		p := New(WithCACertFile(path))
		assert.ErrorIs(t, p.Err(), domain.ErrProbeUnavailable)
	})
}

func TestProber_WithHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	p := New(WithHTTPClient(server.Client()))
	assert.Same(t, server.Client(), p.client)

	resp, err := p.Probe(context.Background(), domain.ProbeRequest{Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestProber_Probe_CallerDeadlineWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(150 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := New(WithTimeout(50 * time.Millisecond))
	req := domain.ProbeRequest{Method: http.MethodGet, URL: server.URL}

	t.Run("longer caller deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		resp, err := p.Probe(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("no caller deadline", func(t *testing.T) {
		_, err := p.Probe(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
