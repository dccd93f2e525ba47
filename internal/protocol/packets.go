// Package protocol defines the wire vocabulary exchanged with the game
// server: JSON envelopes tagged by a type string, with room messages
// carrying a class-tagged payload. The packet set is closed; anything
// outside it is a protocol violation, never silently dropped.
package protocol

import "encoding/json"

// Packet type tags.
const (
	TypeJoin         = "join"
	TypeJoinRoom     = "joinRoom"
	TypeJoinPrepared = "joinPrepared"
	TypeJoined       = "joined"
	TypeLeft         = "left"
	TypePrepared     = "prepared"
	TypeObserved     = "observed"
	TypeRoom         = "room"
)

// Room data class tags.
const (
	ClassMoveRequest = "moveRequest"
	ClassState       = "state"
	ClassResult      = "result"
	ClassError       = "error"
	ClassMove        = "move"
)

// Packet is the closed set of messages exchanged with the server.
type Packet interface {
	packet()
}

// Join asks the server for a seat in any open game.
type Join struct{}

// JoinRoom asks for a seat in a specific room.
type JoinRoom struct {
	RoomID string `json:"room_id"`
}

// JoinPrepared redeems a reservation code for a prepared game.
type JoinPrepared struct {
	Reservation string `json:"reservation"`
}

// Joined confirms that the client got a seat in a room.
type Joined struct {
	RoomID string `json:"room_id"`
}

// Left announces that the server closed the room.
type Left struct {
	RoomID string `json:"room_id"`
}

// GamePrepared confirms a prepared game and carries its reservations.
type GamePrepared struct {
	RoomID       string   `json:"room_id"`
	Reservations []string `json:"reservations,omitempty"`
}

// Observed confirms that the client watches a room as observer.
type Observed struct {
	RoomID string `json:"room_id"`
}

// RoomMessage wraps a class-tagged payload addressed to or coming from
// one room.
type RoomMessage struct {
	RoomID string
	Data   RoomData
}

func (*Join) packet()         {}
func (*JoinRoom) packet()     {}
func (*JoinPrepared) packet() {}
func (*Joined) packet()       {}
func (*Left) packet()         {}
func (*GamePrepared) packet() {}
func (*Observed) packet()     {}
func (*RoomMessage) packet()  {}

// RoomData is the payload union inside a room message.
type RoomData interface {
	roomData()
}

// MoveRequest asks the client for its next move.
type MoveRequest struct{}

// StatePayload is the raw state snapshot the server sends after every
// turn. Board cells and fish totals stay in wire form here; the client
// decodes them into the domain model.
type StatePayload struct {
	StartTeam string         `json:"start_team"`
	Turn      int            `json:"turn"`
	Board     [][]FieldValue `json:"board"`
	LastMove  *MoveValue     `json:"last_move,omitempty"`
	Fishes    []int          `json:"fishes"`
}

// Result is the final outcome of a game. An empty winner means a draw.
type Result struct {
	Winner string `json:"winner,omitempty"`
	Scores []int  `json:"scores,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// GameError is a server-side rule complaint, usually followed by the
// server closing the room.
type GameError struct {
	Message string `json:"message"`
}

// GenericData is a room payload with a class this client has no special
// handling for. It is forwarded to the handler untouched.
type GenericData struct {
	Class string
	Raw   json.RawMessage
}

// MoveReply is the wire answer to a move request.
type MoveReply struct {
	From *CoordValue `json:"from,omitempty"`
	To   CoordValue  `json:"to"`
}

func (*MoveRequest) roomData()  {}
func (*StatePayload) roomData() {}
func (*Result) roomData()       {}
func (*GameError) roomData()    {}
func (*GenericData) roomData()  {}
func (*MoveReply) roomData()    {}

// CoordValue is a hex coordinate in wire form.
type CoordValue struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MoveValue is the last-move delta inside a state snapshot. From is
// absent for placement moves.
type MoveValue struct {
	From *CoordValue `json:"from,omitempty"`
	To   CoordValue  `json:"to"`
}
