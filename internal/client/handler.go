package client

import (
	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

// Handler is implemented by the player logic driving one session. All
// callbacks run on the single session goroutine: none of them is ever
// invoked concurrently with another, and CalculateMove never overlaps a
// state reconstruction. Embed NopHandler to only implement the
// callbacks a bot cares about.
type Handler interface {
	// CalculateMove picks the answer to a move request. state is the
	// most recent reconstructed game state. Returning nil declines the
	// request; no reply is sent and that is not an error.
	CalculateMove(state *game.GameState) *game.Move

	// OnUpdate is called after each reconstructed state is appended to
	// the history.
	OnUpdate(state *game.GameState)

	// OnGameOver delivers the final result. No further state updates
	// follow it.
	OnGameOver(result *protocol.Result)

	// OnError is called with server-reported rule errors and with the
	// message of any fatal condition that stops the session.
	OnError(message string)

	// OnRoomMessage receives room payloads the client has no special
	// handling for, untouched.
	OnRoomMessage(data protocol.RoomData)

	// OnGamePrepared is called when the server prepared a game for this
	// client.
	OnGamePrepared(msg *protocol.GamePrepared)

	// OnGameJoined is called once the client holds a seat in a room.
	OnGameJoined(roomID string)

	// OnGameObserved is called when the client was admitted as observer.
	OnGameObserved(msg *protocol.Observed)

	// OnGameLeft is called when the server leaves the room; the
	// configured disconnect policy runs afterwards.
	OnGameLeft()

	// WhileDisconnected is invoked repeatedly while no server
	// connection exists. Returning true requests shutdown.
	WhileDisconnected(c *GameClient) bool
}

// NopHandler is a Handler that does nothing: it declines every move
// request and keeps running while disconnected. Meant for embedding.
type NopHandler struct{}

func (NopHandler) CalculateMove(*game.GameState) *game.Move { return nil }
func (NopHandler) OnUpdate(*game.GameState)                 {}
func (NopHandler) OnGameOver(*protocol.Result)              {}
func (NopHandler) OnError(string)                           {}
func (NopHandler) OnRoomMessage(protocol.RoomData)          {}
func (NopHandler) OnGamePrepared(*protocol.GamePrepared)    {}
func (NopHandler) OnGameJoined(string)                      {}
func (NopHandler) OnGameObserved(*protocol.Observed)        {}
func (NopHandler) OnGameLeft()                              {}
func (NopHandler) WhileDisconnected(*GameClient) bool       { return false }
