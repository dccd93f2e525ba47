// Package client implements the session core: it pulls packets off the
// transport one at a time, reconstructs game states from server
// snapshots, routes everything to the player logic, and drives the
// connection lifecycle (connected, reconnecting, surviving, stopped).
package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/arcticline/icefloe/internal/protocol"
)

// Transport is the link the session drives. *transport.Conn implements
// it; tests substitute fakes. Connect and Disconnect are idempotent,
// Receive returns (nil, nil) when no packet arrived within its poll
// window.
type Transport interface {
	Connect() error
	Disconnect() error
	Connected() bool
	Receive() (protocol.Packet, error)
	Send(p protocol.Packet) error
}

// ConnectionState is the lifecycle state of one session.
type ConnectionState int

const (
	StateConnected ConnectionState = iota
	StateReconnecting
	StateSurviving
	StateStopped
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateSurviving:
		return "surviving"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Config controls the disconnect policy of a session.
type Config struct {
	// AutoReconnect retries the connection after the server leaves.
	AutoReconnect bool

	// Survive keeps the session loop alive after the server leaves (and
	// after reconnecting failed), until the handler requests shutdown.
	Survive bool

	// ReconnectAttempts bounds the retries; defaults to 3.
	ReconnectAttempts int

	// ReconnectDelay is the wait after each failed attempt; defaults to
	// one second.
	ReconnectDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.ReconnectAttempts <= 0 {
		c.ReconnectAttempts = 3
	}
	if c.ReconnectDelay <= 0 {
		c.ReconnectDelay = time.Second
	}
	return c
}

// GameClient is one client session. All of its methods must be called
// from a single goroutine; the session processes packets strictly
// sequentially and never reconstructs two states concurrently.
type GameClient struct {
	transport Transport
	handler   Handler
	cfg       Config
	log       *log.Logger

	sessionID string
	roomID    string
	history   *History
	state     ConnectionState
	attempt   int
}

// New builds a session around a transport and the player logic.
func New(t Transport, h Handler, cfg Config, logger *log.Logger) *GameClient {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return &GameClient{
		transport: t,
		handler:   h,
		cfg:       cfg.withDefaults(),
		log:       logger.With("session", id[:8]),
		sessionID: id,
		history:   &History{},
		state:     StateStopped,
	}
}

// SessionID returns the client-generated id of this session.
func (c *GameClient) SessionID() string { return c.sessionID }

// History returns the session's append-only event log.
func (c *GameClient) History() *History { return c.history }

// State returns the current lifecycle state.
func (c *GameClient) State() ConnectionState { return c.state }

// RoomID returns the room this session sits in, once joined.
func (c *GameClient) RoomID() string { return c.roomID }

// ReconnectAttempt returns the current retry number while reconnecting.
func (c *GameClient) ReconnectAttempt() int { return c.attempt }

// Connect opens the transport and marks the session connected. Safe to
// call from WhileDisconnected for an out-of-band reconnect.
func (c *GameClient) Connect() error {
	if err := c.transport.Connect(); err != nil {
		return err
	}
	c.state = StateConnected
	return nil
}

// JoinAnyGame asks the server for a seat in any open game.
func (c *GameClient) JoinAnyGame() error {
	return c.transport.Send(&protocol.Join{})
}

// JoinRoom asks for a seat in a specific room.
func (c *GameClient) JoinRoom(roomID string) error {
	return c.transport.Send(&protocol.JoinRoom{RoomID: roomID})
}

// JoinReservation redeems a reservation code for a prepared game.
func (c *GameClient) JoinReservation(code string) error {
	return c.transport.Send(&protocol.JoinPrepared{Reservation: code})
}

// SendRoomMessage transmits a payload to a room.
func (c *GameClient) SendRoomMessage(roomID string, data protocol.RoomData) error {
	return c.transport.Send(&protocol.RoomMessage{RoomID: roomID, Data: data})
}

// Run executes the session loop until the session stops. While
// connected it blocks for the next packet and dispatches it; while
// disconnected it keeps invoking the handler's WhileDisconnected until
// shutdown is requested or the link is back. A fatal error, whether a
// bad frame off the wire or a dispatch failure, is reported to the
// handler, stops the session, and is returned; only genuine link
// failures go through the disconnect policy.
func (c *GameClient) Run() error {
	if !c.transport.Connected() {
		if err := c.Connect(); err != nil {
			return err
		}
	}
	c.state = StateConnected
	c.log.Info("session loop started")

	for c.state != StateStopped {
		if c.transport.Connected() {
			pkt, err := c.transport.Receive()
			if err != nil {
				// A malformed or unrecognized frame is fatal, not a
				// link problem; reconnecting would replay it forever.
				if errors.Is(err, protocol.ErrProtocolViolation) || errors.Is(err, protocol.ErrDecode) {
					c.log.Error("fatal session error", "err", err)
					c.handler.OnError(err.Error())
					c.Stop()
					return err
				}
				c.log.Warn("connection lost", "err", err)
				c.handleLeft()
				continue
			}
			if pkt == nil {
				continue
			}
			if _, ok := pkt.(*protocol.Left); ok {
				c.handler.OnGameLeft()
				c.handleLeft()
				continue
			}
			if err := c.dispatch(pkt); err != nil {
				c.log.Error("fatal session error", "err", err)
				c.handler.OnError(err.Error())
				c.Stop()
				return err
			}
		} else {
			if c.handler.WhileDisconnected(c) {
				c.Stop()
				continue
			}
			if c.transport.Connected() {
				// The handler reconnected out-of-band.
				c.state = StateConnected
			}
		}
	}

	c.log.Info("session loop finished")
	return nil
}

// Stop disconnects the transport and ends the session loop.
func (c *GameClient) Stop() {
	if c.state == StateStopped {
		return
	}
	c.log.Info("shutting down")
	if c.transport.Connected() {
		_ = c.transport.Disconnect()
	}
	c.state = StateStopped
}

// handleLeft applies the configured disconnect policy after the server
// left (or the link dropped): reconnect if configured; when that is off
// or the retries run out, survive or stop.
func (c *GameClient) handleLeft() {
	if c.cfg.AutoReconnect && c.reconnect() {
		return
	}
	if c.cfg.Survive {
		c.log.Info("server left, surviving until shut down manually")
		_ = c.transport.Disconnect()
		c.state = StateSurviving
		return
	}
	c.log.Info("server left")
	c.Stop()
}

// reconnect retries the connection a bounded number of times, waiting
// the configured delay after every failed attempt. It reports whether
// the session is connected again.
func (c *GameClient) reconnect() bool {
	c.state = StateReconnecting
	_ = c.transport.Disconnect()

	for i := 1; i <= c.cfg.ReconnectAttempts; i++ {
		c.attempt = i
		c.log.Info("trying to reach the server", "attempt", i, "of", c.cfg.ReconnectAttempts)
		if err := c.transport.Connect(); err != nil {
			c.log.Warn("reconnect attempt failed", "attempt", i, "err", err)
		} else if c.transport.Connected() {
			c.log.Info("reconnected to server")
			c.state = StateConnected
			c.attempt = 0
			return true
		}
		time.Sleep(c.cfg.ReconnectDelay)
	}

	c.log.Error("could not reach the server", "attempts", c.cfg.ReconnectAttempts)
	c.attempt = 0
	return false
}

// dispatch routes one packet. The packet set is closed: anything that
// falls through the switch is a protocol violation, never silently
// dropped.
func (c *GameClient) dispatch(pkt protocol.Packet) error {
	switch p := pkt.(type) {
	case *protocol.Joined:
		c.roomID = p.RoomID
		c.log.Info("joined game room", "room", p.RoomID)
		c.handler.OnGameJoined(p.RoomID)
	case *protocol.GamePrepared:
		c.handler.OnGamePrepared(p)
	case *protocol.Observed:
		c.handler.OnGameObserved(p)
	case *protocol.RoomMessage:
		return c.dispatchRoom(p)
	default:
		return fmt.Errorf("%w: unrecognized packet %T", protocol.ErrProtocolViolation, pkt)
	}
	return nil
}

func (c *GameClient) dispatchRoom(msg *protocol.RoomMessage) error {
	switch d := msg.Data.(type) {
	case *protocol.MoveRequest:
		return c.onMoveRequest(msg.RoomID)
	case *protocol.StatePayload:
		return c.onState(d)
	case *protocol.Result:
		c.history.appendResult(d)
		c.log.Info("game over", "winner", d.Winner)
		c.handler.OnGameOver(d)
	case *protocol.GameError:
		c.history.appendError(d)
		c.handler.OnError(d.Message)
	case *protocol.GenericData:
		c.handler.OnRoomMessage(d)
	default:
		return fmt.Errorf("%w: unrecognized room data %T", protocol.ErrProtocolViolation, msg.Data)
	}
	return nil
}

// onMoveRequest asks the player logic for a move against the latest
// reconstructed state and sends the encoded reply. A request before any
// state exists is a protocol violation; a declined request sends
// nothing.
func (c *GameClient) onMoveRequest(roomID string) error {
	last := c.history.LatestState()
	if last == nil {
		return fmt.Errorf("%w: move requested before any game state", protocol.ErrProtocolViolation)
	}

	start := time.Now()
	move := c.handler.CalculateMove(last)
	if move == nil {
		c.log.Info("move request declined")
		return nil
	}

	if err := c.SendRoomMessage(roomID, EncodeMoveReply(move)); err != nil {
		return err
	}
	c.log.Info("sent move", "to", move.To, "took", time.Since(start))
	return nil
}

func (c *GameClient) onState(p *protocol.StatePayload) error {
	state, err := ReconstructState(c.history.LatestState(), p)
	if err != nil {
		return err
	}
	c.history.appendState(state)
	c.handler.OnUpdate(state)
	return nil
}
