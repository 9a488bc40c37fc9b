package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func TestServer_Routing(t *testing.T) {
	s := New("127.0.0.1:0", zerolog.Nop())
	s.Handle(http.MethodGet, "/healthcheck", text("health"))
	s.Handle(http.MethodGet, "/status", text("status"))
	s.Fallback(text("relay"))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{method: "GET", path: "/healthcheck", want: "health"},
		{method: "GET", path: "/status", want: "status"},
		{method: "GET", path: "/status/extra", want: "relay"},
		{method: "POST", path: "/healthcheck", want: "relay"},
		{method: "GET", path: "/repos/acme", want: "relay"},
	}

	handler := s.Handler()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestServer_Middlewares(t *testing.T) {
	tag := func(v string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Order", v)
				next.ServeHTTP(w, r)
			})
		}
	}

	s := New("127.0.0.1:0", zerolog.Nop(), tag("a"), tag("b"))
	s.Handle(http.MethodGet, "/x", text("x"))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

	assert.Equal(t, []string{"a", "b"}, rec.Header().Values("X-Order"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/relayed", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"a", "b"}, rec.Header().Values("X-Order"), "fallback is wrapped too")
}

func TestServer_StartAndClose(t *testing.T) {
	s := New("127.0.0.1:0", zerolog.Nop())
	s.Handle(http.MethodGet, "/healthcheck", text("ok"))

	addr, err := s.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	resp, err := http.Get("http://" + addr.String() + "/healthcheck")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_CloseStopsStart(t *testing.T) {
	s := New("127.0.0.1:0", zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- s.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.srv != nil
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Close(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	s := New("256.0.0.1:0", zerolog.Nop())
	_, err := s.Listen()
	assert.Error(t, err)
}
