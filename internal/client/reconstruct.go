package client

import (
	"fmt"

	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

// ReconstructState derives the next game state from the previous one
// (nil for the first state of a game) and a freshly received state
// payload. It is a pure function of its two inputs: team scores, move
// histories and penguin sets are seeded from the previous state and the
// last-move delta is applied to the team that just acted.
func ReconstructState(prev *game.GameState, p *protocol.StatePayload) (*game.GameState, error) {
	board, err := DecodeBoard(p.Board)
	if err != nil {
		return nil, err
	}

	var startTeam game.TeamID
	switch p.StartTeam {
	case game.TeamOne.String():
		startTeam = game.TeamOne
	case game.TeamTwo.String():
		startTeam = game.TeamTwo
	default:
		return nil, fmt.Errorf("%w: unknown start team %q", protocol.ErrProtocolViolation, p.StartTeam)
	}

	if p.Turn < 0 {
		return nil, fmt.Errorf("%w: negative turn %d", protocol.ErrProtocolViolation, p.Turn)
	}

	if prev != nil {
		if p.Turn <= prev.Turn {
			return nil, fmt.Errorf("%w: turn %d does not advance past %d",
				protocol.ErrProtocolViolation, p.Turn, prev.Turn)
		}
		if startTeam != prev.StartTeam() {
			return nil, fmt.Errorf("%w: start team changed from %v to %v mid-game",
				protocol.ErrProtocolViolation, prev.StartTeam(), startTeam)
		}
	}

	first := seedTeam(startTeam, prev, func(s *game.GameState) *game.Team { return s.FirstTeam })
	second := seedTeam(startTeam.Opponent(), prev, func(s *game.GameState) *game.Team { return s.SecondTeam })

	state := &game.GameState{
		Board:      board,
		Turn:       p.Turn,
		FirstTeam:  first,
		SecondTeam: second,
	}

	if p.LastMove != nil {
		if err := applyLastMove(state, p); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// seedTeam carries score, moves and penguins over from the previous
// state, or starts empty for the first state of a game.
func seedTeam(id game.TeamID, prev *game.GameState, pick func(*game.GameState) *game.Team) *game.Team {
	team := &game.Team{ID: id}
	if prev == nil {
		return team
	}
	src := pick(prev)
	team.Fish = src.Fish
	team.Moves = append([]game.Move(nil), src.Moves...)
	team.Penguins = append([]game.Penguin(nil), src.Penguins...)
	return team
}

// applyLastMove attributes the delta to the team that is not current in
// the new state: that team just acted. Its move history grows by one,
// its penguin set gains (or relocates to) the destination, and its
// score takes the fish delta at its fixed slot.
func applyLastMove(state *game.GameState, p *protocol.StatePayload) error {
	acted := state.OpponentTeam()

	move := game.Move{
		Team: acted.ID,
		To:   game.Coordinate{X: p.LastMove.To.X, Y: p.LastMove.To.Y},
	}
	if p.LastMove.From != nil {
		move.From = &game.Coordinate{X: p.LastMove.From.X, Y: p.LastMove.From.Y}
	}

	slot := acted.ID.Index()
	if slot >= len(p.Fishes) {
		return fmt.Errorf("%w: no fish total for team slot %d", protocol.ErrProtocolViolation, slot)
	}

	state.LastMove = &move
	acted.Moves = append(acted.Moves, move)
	if move.From != nil {
		acted.Penguins = removePenguinAt(acted.Penguins, *move.From)
	}
	acted.Penguins = append(acted.Penguins, game.Penguin{Team: acted.ID, Coordinate: move.To})
	acted.Fish += p.Fishes[slot]
	return nil
}

func removePenguinAt(penguins []game.Penguin, c game.Coordinate) []game.Penguin {
	out := penguins[:0:0]
	for _, p := range penguins {
		if p.Coordinate != c {
			out = append(out, p)
		}
	}
	return out
}
