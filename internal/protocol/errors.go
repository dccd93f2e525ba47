package protocol

import "errors"

var (
	// ErrDecode marks a malformed board payload: a cell that is neither
	// a fish count nor a team marker, or a non-rectangular grid.
	ErrDecode = errors.New("malformed board payload")

	// ErrProtocolViolation marks a message sequence the server must
	// never produce: an unrecognized packet, a move request before any
	// state, an out-of-range team slot. The session does not try to
	// recover from a desynchronized state.
	ErrProtocolViolation = errors.New("protocol contract violated")
)
