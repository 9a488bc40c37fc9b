// Package controlchannel maintains the websocket connection to the broker
// server and exposes its ready state.
package controlchannel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/wyc-thg/broker/internal/boundaries/out"
	"github.com/wyc-thg/broker/internal/domain"
	"github.com/wyc-thg/broker/internal/logging"
)

const (
	// Time allowed to write a control message to the server.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the server.
	defaultPongWait = 60 * time.Second

	// Maximum message size accepted from the server.
	maxMessageSize = 1 << 20

	// TokenHeader carries the broker token on the handshake.
	TokenHeader = "X-Broker-Token"
)

// Ensure Client implements out.ControlChannel.
var _ out.ControlChannel = (*Client)(nil)

// Client is a reconnecting websocket client.
type Client struct {
	url        string
	dialURL    string
	header     http.Header
	dialer     *websocket.Dialer
	sanitizer  *domain.Sanitizer
	pongWait   time.Duration
	newBackOff func() backoff.BackOff
	onState    func(domain.ReadyState)
	log        zerolog.Logger

	state atomic.Int32

	mu      sync.Mutex
	conn    *websocket.Conn
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// Option configures the Client.
type Option func(*Client)

// WithToken sends token in the TokenHeader of every handshake.
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.header.Set(TokenHeader, token)
		}
	}
}

// WithUserAgent sets the handshake User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.header.Set("User-Agent", ua)
	}
}

// WithSanitizer redacts secrets from logged URLs and errors.
func WithSanitizer(s *domain.Sanitizer) Option {
	return func(c *Client) {
		c.sanitizer = s
	}
}

// WithBackOff sets the reconnect policy. The factory is called once per
// connection attempt series.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = f
	}
}

// WithPongWait sets how long the connection may stay silent.
// Pings are sent at 9/10 of this period.
func WithPongWait(d time.Duration) Option {
	return func(c *Client) {
		c.pongWait = d
	}
}

// WithStateHook is called after every state transition.
func WithStateHook(f func(domain.ReadyState)) Option {
	return func(c *Client) {
		c.onState = f
	}
}

// New creates a client for rawURL. http and https URLs are dialed as ws and
// wss respectively.
func New(rawURL string, log zerolog.Logger, opts ...Option) (*Client, error) {
	dialURL, err := websocketURL(rawURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		url:     rawURL,
		dialURL: dialURL,
		header:  http.Header{},
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
		},
		pongWait:   defaultPongWait,
		newBackOff: defaultBackOff,
		log:        logging.Adapter(log, "controlchannel"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.Store(int32(domain.StateClosed))

	return c, nil
}

// State returns the current ready state.
func (c *Client) State() domain.ReadyState {
	return domain.ReadyState(c.state.Load())
}

// URL returns the configured broker server URL.
func (c *Client) URL() string {
	return c.url
}

// Start connects in the background and keeps reconnecting until ctx is
// cancelled or Close is called.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true

	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	c.setState(domain.StateConnecting)

	go c.run(ctx)
}

// Close stops reconnecting and closes the connection.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	if !c.started || c.cancel == nil {
		c.mu.Unlock()
		c.setState(domain.StateClosed)
		return nil
	}
	cancel, done, conn := c.cancel, c.done, c.conn
	c.cancel = nil
	c.mu.Unlock()

	c.setState(domain.StateClosing)
	if conn != nil {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	}
	cancel()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("control channel close: %w", ctx.Err())
	}

	c.setState(domain.StateClosed)
	c.log.Info().Msg("control channel closed")
	return nil
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	log := c.log.With().Str(logging.FieldURL, c.sanitizer.Sanitize(c.url)).Logger()
	b := backoff.WithContext(c.newBackOff(), ctx)

	for {
		c.setState(domain.StateConnecting)
		conn, resp, err := c.dialer.DialContext(ctx, c.dialURL, c.header)
		if err == nil {
			b.Reset()
			log.Info().Msg("control channel connected")
			c.serve(ctx, conn)
			if ctx.Err() != nil {
				return
			}
			log.Warn().Msg("control channel disconnected")
		} else {
			if ctx.Err() != nil {
				return
			}
			ev := log.Warn().Err(c.sanitizer.Error(err))
			if resp != nil {
				ev = ev.Int(logging.FieldStatus, resp.StatusCode)
			}
			ev.Msg("control channel connection failed")
		}

		c.setState(domain.StateClosed)

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			if ctx.Err() == nil {
				log.Error().Msg("control channel gave up reconnecting")
			}
			return
		}
		log.Debug().Dur("retry_in", wait).Msg("control channel reconnect scheduled")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// serve pumps the connection until it fails or ctx is cancelled.
func (c *Client) serve(ctx context.Context, conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.setState(domain.StateOpen)

	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
	}()

	stop := make(chan struct{})
	defer close(stop)
	go c.keepAlive(ctx, conn, stop)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(c.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug().Err(err).Msg("control channel read failed")
			}
			return
		}
		c.log.Trace().Int("type", kind).Int("size", len(data)).Msg("control channel message")
	}
}

// keepAlive pings the server and unblocks the reader on cancellation.
func (c *Client) keepAlive(ctx context.Context, conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(c.pongWait * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}

func (c *Client) setState(s domain.ReadyState) {
	if domain.ReadyState(c.state.Swap(int32(s))) == s {
		return
	}
	if c.onState != nil {
		c.onState(s)
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func websocketURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: broker server URL: %v", domain.ErrInvalidConfig, errors.Unwrap(err))
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("%w: broker server URL must be http(s) or ws(s), got %q", domain.ErrInvalidConfig, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: broker server URL has no host", domain.ErrInvalidConfig)
	}
	return u.String(), nil
}
