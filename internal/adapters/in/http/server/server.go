// Package server implements the local web server the status endpoints and
// the relay are mounted on.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/adapters/in/http/middleware"
	"github.com/wyc-thg/broker/internal/logging"
)

// shutdownTimeout bounds a shutdown triggered by context cancellation.
const shutdownTimeout = 30 * time.Second

// Server routes by method and exact path, with a catch-all fallback.
type Server struct {
	addr        string
	mux         *http.ServeMux
	middlewares []func(http.Handler) http.Handler
	fallback    http.Handler
	log         zerolog.Logger

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	handler  http.Handler
}

// New creates a server for addr (host:port). middlewares wrap every route,
// the first one outermost.
func New(addr string, log zerolog.Logger, middlewares ...func(http.Handler) http.Handler) *Server {
	return &Server{
		addr:        addr,
		mux:         http.NewServeMux(),
		middlewares: middlewares,
		fallback:    http.NotFoundHandler(),
		log:         logging.Adapter(log, "http"),
	}
}

// Handle registers h for method and exact path. GET routes also answer HEAD.
func (s *Server) Handle(method, path string, h http.Handler) {
	s.mux.Handle(method+" "+path, h)
}

// Fallback sets the handler for every request no route matches.
func (s *Server) Fallback(h http.Handler) {
	s.fallback = h
}

// Handler returns the composed handler. Routes registered afterwards are
// still served; the fallback is fixed on first call.
func (s *Server) Handler() http.Handler {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handler == nil {
		s.mux.Handle("/", s.fallback)
		s.handler = middleware.Chain(s.middlewares...)(s.mux)
	}
	return s.handler
}

// Listen binds the listening socket and returns its address.
func (s *Server) Listen() (net.Addr, error) {
	handler := s.Handler()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr(), nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return ln.Addr(), nil
}

// Start serves until ctx is cancelled or Close is called. It binds first
// if Listen was not called.
func (s *Server) Start(ctx context.Context) error {
	addr, err := s.Listen()
	if err != nil {
		return err
	}

	s.mu.Lock()
	srv, ln := s.srv, s.listener
	s.mu.Unlock()

	s.log.Info().Str("address", addr.String()).Msg("web server starting")

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info().Msg("web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Close(shutdownCtx)
	}
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("web server shutdown: %w", err)
	}
	return nil
}
