package game

import "testing"

// buildBoard creates a width x height board where every field holds the
// given fish count, then applies the overrides.
func buildBoard(width, height, fish int, override map[Coordinate]Field) Board {
	rows := make([][]Field, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]Field, width)
		for x := 0; x < width; x++ {
			coord := CartesianCoordinate{X: x, Y: y}.ToHex()
			f := Field{Coordinate: coord, Fish: fish}
			if o, ok := override[coord]; ok {
				o.Coordinate = coord
				f = o
			}
			rows[y][x] = f
		}
	}
	return NewBoard(rows)
}

func newTestState(board Board, turn int) *GameState {
	return &GameState{
		Board:      board,
		Turn:       turn,
		FirstTeam:  &Team{ID: TeamOne},
		SecondTeam: &Team{ID: TeamTwo},
	}
}

func TestCurrentTeamParity(t *testing.T) {
	board := buildBoard(4, 4, 1, nil)

	even := newTestState(board, 0)
	if even.CurrentTeam().ID != TeamOne {
		t.Errorf("turn 0: expected ONE to move, got %v", even.CurrentTeam().ID)
	}
	if even.OpponentTeam().ID != TeamTwo {
		t.Errorf("turn 0: expected TWO as opponent, got %v", even.OpponentTeam().ID)
	}

	odd := newTestState(board, 1)
	if odd.CurrentTeam().ID != TeamTwo {
		t.Errorf("turn 1: expected TWO to move, got %v", odd.CurrentTeam().ID)
	}
}

func TestPlacementMovesTargetOneFishFields(t *testing.T) {
	two := CartesianCoordinate{X: 1, Y: 1}.ToHex()
	taken := CartesianCoordinate{X: 0, Y: 0}.ToHex()
	board := buildBoard(3, 2, 1, map[Coordinate]Field{
		two:   {Fish: 2},
		taken: {Penguin: &Penguin{Team: TeamTwo}},
	})

	s := newTestState(board, 0)
	moves := s.PossibleMoves()

	// 6 fields total, one has two fish, one is occupied.
	if len(moves) != 4 {
		t.Fatalf("expected 4 placement moves, got %d", len(moves))
	}
	for _, m := range moves {
		if m.From != nil {
			t.Errorf("placement move must not have an origin, got %+v", m.From)
		}
		if m.To == two || m.To == taken {
			t.Errorf("illegal placement destination %+v", m.To)
		}
	}
}

func TestSlidingMovesStopAtObstacles(t *testing.T) {
	origin := CartesianCoordinate{X: 0, Y: 0}.ToHex()
	hole := CartesianCoordinate{X: 2, Y: 0}.ToHex()
	board := buildBoard(4, 1, 1, map[Coordinate]Field{
		origin: {Penguin: &Penguin{Team: TeamOne, Coordinate: origin}},
		hole:   {Fish: 0},
	})

	s := newTestState(board, 2*PenguinsPerTeam)
	moves := s.PossibleMoves()

	// Single row: the penguin can only slide right, and the hole at
	// x=2 blocks everything behind it.
	if len(moves) != 1 {
		t.Fatalf("expected exactly 1 move, got %d: %+v", len(moves), moves)
	}
	want := CartesianCoordinate{X: 1, Y: 0}.ToHex()
	if moves[0].To != want {
		t.Errorf("expected destination %+v, got %+v", want, moves[0].To)
	}
	if moves[0].From == nil || *moves[0].From != origin {
		t.Errorf("expected origin %+v, got %+v", origin, moves[0].From)
	}
}

func TestPlacementPhaseBoundary(t *testing.T) {
	board := buildBoard(2, 2, 1, nil)
	if s := newTestState(board, 2*PenguinsPerTeam-1); !s.PlacementPhase() {
		t.Error("turn 7 should still be placement phase")
	}
	if s := newTestState(board, 2*PenguinsPerTeam); s.PlacementPhase() {
		t.Error("turn 8 should be sliding phase")
	}
}
