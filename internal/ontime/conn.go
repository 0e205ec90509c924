package ontime

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var (
	// ErrNotConnected is returned by Send while no connection is up.
	ErrNotConnected = errors.New("ontime: not connected")
	// ErrClosed is returned by Send after Run has finished.
	ErrClosed = errors.New("ontime: connection closed")
)

const (
	writeTimeout       = 5 * time.Second
	baseReconnectDelay = time.Second
	maxReconnectDelay  = 30 * time.Second

	// stableConnAfter is how long a connection must survive before the
	// backoff resets. A server that accepts and immediately drops keeps
	// escalating instead of being re-dialed in a hot loop.
	stableConnAfter = 30 * time.Second
)

// Endpoint derives the websocket endpoint from the configured server URL:
// the http scheme becomes ws and /ws is appended.
func Endpoint(serverURL string) (string, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		return "", fmt.Errorf("server url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// Conn owns the single bidirectional channel to the server. Run keeps the
// connection alive, re-dialing with capped exponential backoff, and pushes
// normalized updates (including connection status changes) onto Updates.
type Conn struct {
	endpoint string
	dialer   *websocket.Dialer
	log      zerolog.Logger
	updates  chan Update

	mu     sync.Mutex
	ws     *websocket.Conn
	closed bool
}

// NewConn builds a Conn for the given server base URL.
func NewConn(serverURL string, logger zerolog.Logger) (*Conn, error) {
	endpoint, err := Endpoint(serverURL)
	if err != nil {
		return nil, err
	}
	return &Conn{
		endpoint: endpoint,
		dialer:   websocket.DefaultDialer,
		log:      logger.With().Str("component", "conn").Logger(),
		updates:  make(chan Update, 16),
	}, nil
}

// Updates returns the stream of normalized inbound updates.
func (c *Conn) Updates() <-chan Update { return c.updates }

// Run dials and reads until ctx is cancelled. On every successful connect it
// sends a poll to request a full snapshot; on drop it schedules a reconnect.
// Cancellation stops further reconnect attempts.
func (c *Conn) Run(ctx context.Context) {
	defer c.shutdown()

	attempt := 0
	for ctx.Err() == nil {
		ws, _, err := c.dialer.DialContext(ctx, c.endpoint, nil)
		if err != nil {
			delay := reconnectDelay(attempt)
			attempt++
			c.log.Debug().Err(err).Dur("retry_in", delay).Msg("dial failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			continue
		}
		connectedAt := time.Now()

		c.setConn(ws)
		c.emit(ctx, Update{Kind: UpdateStatus, Connected: true})
		c.log.Info().Str("endpoint", c.endpoint).Msg("connected")

		if err := c.Send(Poll()); err != nil {
			c.log.Debug().Err(err).Msg("initial poll failed")
		}

		c.readLoop(ctx, ws)

		c.setConn(nil)
		c.emit(ctx, Update{Kind: UpdateStatus, Connected: false})

		// A drop waits like a failed dial does. Only a connection that
		// held for a while resets the escalation, so a flapping server
		// cannot pin us in an undelayed dial loop.
		if time.Since(connectedAt) >= stableConnAfter {
			attempt = 0
		}
		delay := reconnectDelay(attempt)
		attempt++
		c.log.Info().Dur("retry_in", delay).Msg("disconnected")
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// Send writes one control message. It fails with ErrNotConnected while the
// connection is down rather than dropping the message silently.
func (c *Conn) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.ws == nil {
		return ErrNotConnected
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.ws.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s: %w", msg.Tag, err)
	}
	return nil
}

func (c *Conn) readLoop(ctx context.Context, ws *websocket.Conn) {
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.log.Debug().Err(err).Msg("read failed")
			}
			return
		}
		update, ok := Normalize(raw)
		if !ok {
			continue
		}
		c.emit(ctx, update)
	}
}

func (c *Conn) emit(ctx context.Context, u Update) {
	select {
	case c.updates <- u:
	case <-ctx.Done():
	}
}

func (c *Conn) setConn(ws *websocket.Conn) {
	c.mu.Lock()
	old := c.ws
	c.ws = ws
	c.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

func (c *Conn) shutdown() {
	c.mu.Lock()
	c.closed = true
	ws := c.ws
	c.ws = nil
	c.mu.Unlock()
	if ws != nil {
		_ = ws.Close()
	}
}

// reconnectDelay doubles from the base delay and caps at maxReconnectDelay.
func reconnectDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return baseReconnectDelay
	}
	delay := baseReconnectDelay << uint(attempt)
	if delay > maxReconnectDelay || delay <= 0 {
		return maxReconnectDelay
	}
	return delay
}
