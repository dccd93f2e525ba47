package client

import (
	"errors"
	"testing"

	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

// fishBoard is a 4x4 raw board of one-fish cells.
func fishBoard() [][]protocol.FieldValue {
	rows := make([][]protocol.FieldValue, 4)
	for y := range rows {
		rows[y] = make([]protocol.FieldValue, 4)
		for x := range rows[y] {
			rows[y][x] = protocol.FishCell(1)
		}
	}
	return rows
}

func statePayload(turn int, lastMove *protocol.MoveValue, fishes []int) *protocol.StatePayload {
	return &protocol.StatePayload{
		StartTeam: "ONE",
		Turn:      turn,
		Board:     fishBoard(),
		LastMove:  lastMove,
		Fishes:    fishes,
	}
}

func TestFirstStateIsEmpty(t *testing.T) {
	state, err := ReconstructState(nil, statePayload(0, nil, []int{0, 0}))
	if err != nil {
		t.Fatalf("ReconstructState failed: %v", err)
	}

	if state.Turn != 0 {
		t.Errorf("expected turn 0, got %d", state.Turn)
	}
	if state.CurrentTeam().ID != game.TeamOne {
		t.Errorf("expected ONE to move first, got %v", state.CurrentTeam().ID)
	}
	if state.LastMove != nil {
		t.Errorf("first state must have no last move, got %+v", state.LastMove)
	}
	for _, team := range []*game.Team{state.FirstTeam, state.SecondTeam} {
		if team.Fish != 0 || len(team.Moves) != 0 || len(team.Penguins) != 0 {
			t.Errorf("team %v must start empty, got %+v", team.ID, team)
		}
	}
}

func TestSecondStateCreditsActingTeam(t *testing.T) {
	prev, err := ReconstructState(nil, statePayload(0, nil, []int{0, 0}))
	if err != nil {
		t.Fatalf("first ReconstructState failed: %v", err)
	}

	dest := protocol.CoordValue{X: 3, Y: 2}
	next, err := ReconstructState(prev, statePayload(1, &protocol.MoveValue{To: dest}, []int{2, 0}))
	if err != nil {
		t.Fatalf("second ReconstructState failed: %v", err)
	}

	one := next.TeamByID(game.TeamOne)
	if one.Fish != 2 {
		t.Errorf("expected ONE score 2, got %d", one.Fish)
	}
	if len(one.Moves) != 1 {
		t.Fatalf("expected one recorded move, got %d", len(one.Moves))
	}
	if len(one.Penguins) != 1 || one.Penguins[0].Coordinate != (game.Coordinate{X: 3, Y: 2}) {
		t.Errorf("expected a ONE penguin at (3,2), got %+v", one.Penguins)
	}
	if next.CurrentTeam().ID != game.TeamTwo {
		t.Errorf("expected TWO to move next, got %v", next.CurrentTeam().ID)
	}
	if next.LastMove == nil || next.LastMove.Team != game.TeamOne {
		t.Errorf("last move must belong to ONE, got %+v", next.LastMove)
	}
}

func TestCurrentTeamAlternates(t *testing.T) {
	var prev *game.GameState
	for turn := 0; turn < 6; turn++ {
		var lm *protocol.MoveValue
		if turn > 0 {
			lm = &protocol.MoveValue{To: protocol.CoordValue{X: turn % 4 * 2, Y: 0}}
		}
		state, err := ReconstructState(prev, statePayload(turn, lm, []int{1, 1}))
		if err != nil {
			t.Fatalf("turn %d: ReconstructState failed: %v", turn, err)
		}

		want := game.TeamOne
		if turn%2 == 1 {
			want = game.TeamTwo
		}
		if state.CurrentTeam().ID != want {
			t.Errorf("turn %d: expected %v to move, got %v", turn, want, state.CurrentTeam().ID)
		}
		prev = state
	}
}

func TestScoresAccumulateAcrossStates(t *testing.T) {
	deltas := [][]int{{0, 0}, {2, 0}, {0, 3}, {1, 0}, {0, 2}}

	var prev *game.GameState
	for turn, fishes := range deltas {
		var lm *protocol.MoveValue
		if turn > 0 {
			lm = &protocol.MoveValue{To: protocol.CoordValue{X: turn * 2 % 8, Y: 0}}
		}
		state, err := ReconstructState(prev, statePayload(turn, lm, fishes))
		if err != nil {
			t.Fatalf("turn %d: ReconstructState failed: %v", turn, err)
		}
		prev = state
	}

	one := prev.TeamByID(game.TeamOne)
	two := prev.TeamByID(game.TeamTwo)
	if one.Fish != 3 { // 2 (turn 1) + 1 (turn 3)
		t.Errorf("expected ONE score 3, got %d", one.Fish)
	}
	if two.Fish != 5 { // 3 (turn 2) + 2 (turn 4)
		t.Errorf("expected TWO score 5, got %d", two.Fish)
	}
	if len(one.Moves) != 2 || len(two.Moves) != 2 {
		t.Errorf("expected 2 moves per team, got %d and %d", len(one.Moves), len(two.Moves))
	}
}

func TestMoveWithOriginRelocatesPenguin(t *testing.T) {
	prev, err := ReconstructState(nil, statePayload(0, nil, []int{0, 0}))
	if err != nil {
		t.Fatalf("first ReconstructState failed: %v", err)
	}

	placed, err := ReconstructState(prev,
		statePayload(1, &protocol.MoveValue{To: protocol.CoordValue{X: 0, Y: 0}}, []int{1, 0}))
	if err != nil {
		t.Fatalf("placement ReconstructState failed: %v", err)
	}

	// TWO acts on turn 1's state... the next two snapshots bring ONE's
	// penguin from (0,0) to (4,0).
	mid, err := ReconstructState(placed,
		statePayload(2, &protocol.MoveValue{To: protocol.CoordValue{X: 1, Y: 1}}, []int{0, 1}))
	if err != nil {
		t.Fatalf("TWO placement failed: %v", err)
	}

	from := protocol.CoordValue{X: 0, Y: 0}
	moved, err := ReconstructState(mid,
		statePayload(3, &protocol.MoveValue{From: &from, To: protocol.CoordValue{X: 4, Y: 0}}, []int{1, 0}))
	if err != nil {
		t.Fatalf("sliding ReconstructState failed: %v", err)
	}

	one := moved.TeamByID(game.TeamOne)
	if len(one.Penguins) != 1 {
		t.Fatalf("expected 1 penguin after relocation, got %d", len(one.Penguins))
	}
	if one.Penguins[0].Coordinate != (game.Coordinate{X: 4, Y: 0}) {
		t.Errorf("expected penguin at (4,0), got %+v", one.Penguins[0].Coordinate)
	}
	if one.Fish != 2 {
		t.Errorf("expected ONE score 2, got %d", one.Fish)
	}
}

func TestFishSlotOutOfRangeIsViolation(t *testing.T) {
	prev, err := ReconstructState(nil, statePayload(0, nil, []int{0, 0}))
	if err != nil {
		t.Fatalf("first ReconstructState failed: %v", err)
	}

	// Turn 2: ONE acted at slot 0, an empty fishes array cannot resolve it.
	_, err = ReconstructState(prev,
		statePayload(1, &protocol.MoveValue{To: protocol.CoordValue{X: 0, Y: 0}}, nil))
	if !errors.Is(err, protocol.ErrProtocolViolation) {
		t.Fatalf("expected protocol violation, got %v", err)
	}
}

func TestTurnMustAdvance(t *testing.T) {
	prev, err := ReconstructState(nil, statePayload(2, nil, []int{0, 0}))
	if err != nil {
		t.Fatalf("first ReconstructState failed: %v", err)
	}

	if _, err := ReconstructState(prev, statePayload(2, nil, []int{0, 0})); !errors.Is(err, protocol.ErrProtocolViolation) {
		t.Fatalf("expected protocol violation for a stale turn, got %v", err)
	}
}

func TestNegativeTurnIsViolation(t *testing.T) {
	if _, err := ReconstructState(nil, statePayload(-1, nil, []int{0, 0})); !errors.Is(err, protocol.ErrProtocolViolation) {
		t.Fatalf("expected protocol violation for a negative turn, got %v", err)
	}
}

func TestStartTeamMustNotChange(t *testing.T) {
	prev, err := ReconstructState(nil, statePayload(0, nil, []int{0, 0}))
	if err != nil {
		t.Fatalf("first ReconstructState failed: %v", err)
	}

	flipped := statePayload(1, nil, []int{0, 0})
	flipped.StartTeam = "TWO"
	if _, err := ReconstructState(prev, flipped); !errors.Is(err, protocol.ErrProtocolViolation) {
		t.Fatalf("expected protocol violation for a flipped start team, got %v", err)
	}
}
