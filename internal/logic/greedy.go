package logic

import "github.com/arcticline/icefloe/internal/game"

func init() {
	Register("greedy", "takes the destination with the most fish", func() Strategy {
		return &Greedy{}
	})
}

// Greedy always moves to the reachable field holding the most fish,
// breaking ties by move enumeration order.
type Greedy struct{}

func (*Greedy) Name() string { return "greedy" }

func (*Greedy) CalculateMove(state *game.GameState) *game.Move {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return nil
	}

	best := moves[0]
	bestFish := destinationFish(state, best)
	for _, m := range moves[1:] {
		if fish := destinationFish(state, m); fish > bestFish {
			best, bestFish = m, fish
		}
	}
	return &best
}

func destinationFish(state *game.GameState, m game.Move) int {
	f, ok := state.Board.FieldAt(m.To)
	if !ok {
		return 0
	}
	return f.Fish
}
