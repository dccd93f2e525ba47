package logic

import (
	"math/rand"
	"time"

	"github.com/arcticline/icefloe/internal/game"
)

func init() {
	Register("random", "picks a uniformly random legal move", func() Strategy {
		return NewRandom(time.Now().UnixNano())
	})
}

// Random plays a uniformly random legal move. Mostly useful as a
// sparring partner and for smoke-testing a server setup.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy with a fixed seed so games can be
// reproduced.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) CalculateMove(state *game.GameState) *game.Move {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		return nil
	}
	m := moves[r.rng.Intn(len(moves))]
	return &m
}
