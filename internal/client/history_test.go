package client

import (
	"testing"

	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

func TestLatestStateSearchesBackward(t *testing.T) {
	h := &History{}
	if h.LatestState() != nil {
		t.Fatal("empty history must have no latest state")
	}

	first := &game.GameState{Turn: 0}
	second := &game.GameState{Turn: 1}
	h.appendState(first)
	h.appendError(&protocol.GameError{Message: "late move"})
	h.appendState(second)
	h.appendResult(&protocol.Result{Winner: "ONE"})

	if got := h.LatestState(); got != second {
		t.Errorf("expected the newest state, got turn %d", got.Turn)
	}
	if h.Len() != 4 {
		t.Errorf("expected 4 entries, got %d", h.Len())
	}
}

func TestEntriesReturnsACopy(t *testing.T) {
	h := &History{}
	h.appendState(&game.GameState{Turn: 0})

	entries := h.Entries()
	entries[0] = Entry{}
	if h.LatestState() == nil {
		t.Error("mutating the copy must not touch the log")
	}
}
