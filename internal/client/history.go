package client

import (
	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

// Entry is one history record. Exactly one field is set: a reconstructed
// game state, a final result, or a server-reported game error.
type Entry struct {
	State  *game.GameState
	Result *protocol.Result
	Err    *protocol.GameError
}

// History is the append-only log of everything the server reported
// during one session. Entries are never removed or reordered; only the
// session goroutine appends.
type History struct {
	entries []Entry
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log in arrival order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// LatestState searches backward for the most recent game state. It
// returns nil when no state was received yet.
func (h *History) LatestState() *game.GameState {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].State != nil {
			return h.entries[i].State
		}
	}
	return nil
}

func (h *History) appendState(s *game.GameState) {
	h.entries = append(h.entries, Entry{State: s})
}

func (h *History) appendResult(r *protocol.Result) {
	h.entries = append(h.entries, Entry{Result: r})
}

func (h *History) appendError(e *protocol.GameError) {
	h.entries = append(h.entries, Entry{Err: e})
}
