// Package transport maintains the persistent websocket link to the game
// server and converts raw frames to and from protocol packets. The
// client core only sees the already-parsed packets.
package transport

import (
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/arcticline/icefloe/internal/protocol"
)

const (
	writeWait = 10 * time.Second

	// defaultPollInterval bounds how long Receive blocks before it
	// reports "nothing yet", so the session loop stays responsive while
	// disconnect policies are evaluated.
	defaultPollInterval = 250 * time.Millisecond
)

// Conn is a websocket connection to one game server. Connect and
// Disconnect are idempotent; Receive and Send must only be called from
// the single session goroutine.
type Conn struct {
	url  string
	log  *log.Logger
	poll time.Duration

	mu sync.Mutex
	ws *websocket.Conn
}

// Option adjusts a Conn.
type Option func(*Conn)

// WithPollInterval overrides how long Receive waits for a frame before
// returning empty-handed.
func WithPollInterval(d time.Duration) Option {
	return func(c *Conn) { c.poll = d }
}

// WithLogger attaches a logger; the default logs to the global logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Conn) { c.log = l }
}

// New builds a connection for ws://host:port/path. Nothing is dialed
// until Connect is called.
func New(host string, port int, path string, opts ...Option) *Conn {
	if path == "" {
		path = "/"
	}
	u := url.URL{Scheme: "ws", Host: fmt.Sprintf("%s:%d", host, port), Path: path}
	c := &Conn{
		url:  u.String(),
		log:  log.Default(),
		poll: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials the server. Calling it while connected is a no-op.
func (c *Conn) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ws != nil {
		return nil
	}

	ws, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", c.url, err)
	}
	c.ws = ws
	c.log.Debug("connected", "url", c.url)
	return nil
}

// Disconnect closes the link. Calling it while disconnected is a no-op.
func (c *Conn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ws == nil {
		return nil
	}

	deadline := time.Now().Add(writeWait)
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	err := c.ws.Close()
	c.ws = nil
	c.log.Debug("disconnected", "url", c.url)
	return err
}

// Connected reports whether a link is currently open.
func (c *Conn) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws != nil
}

// Receive waits up to one poll interval for the next packet. It returns
// (nil, nil) when no frame arrived in time. Any read failure closes the
// link before the error is reported.
func (c *Conn) Receive() (protocol.Packet, error) {
	c.mu.Lock()
	ws := c.ws
	c.mu.Unlock()
	if ws == nil {
		return nil, fmt.Errorf("transport: not connected")
	}

	_ = ws.SetReadDeadline(time.Now().Add(c.poll))
	_, raw, err := ws.ReadMessage()
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, nil
		}
		_ = c.Disconnect()
		return nil, fmt.Errorf("transport: read: %w", err)
	}
	return protocol.DecodePacket(raw)
}

// Send encodes and transmits one packet.
func (c *Conn) Send(p protocol.Packet) error {
	c.mu.Lock()
	ws := c.ws
	c.mu.Unlock()
	if ws == nil {
		return fmt.Errorf("transport: not connected")
	}

	raw, err := protocol.EncodePacket(p)
	if err != nil {
		return err
	}
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ws.WriteMessage(websocket.TextMessage, raw); err != nil {
		_ = c.Disconnect()
		return fmt.Errorf("transport: write: %w", err)
	}
	return nil
}
