package game

// PenguinsPerTeam is how many penguins each team places before the
// sliding phase begins.
const PenguinsPerTeam = 4

// Move is one action of a team: From is nil while the team is still
// placing penguins, otherwise it names the origin field. Immutable.
type Move struct {
	Team TeamID
	From *Coordinate
	To   Coordinate
}

// Team is one side's accumulated view of the game: its score, the moves
// it has made in order, and its penguins currently on the board.
type Team struct {
	ID       TeamID
	Fish     int
	Moves    []Move
	Penguins []Penguin
}

// GameState is one reconstructed snapshot of the game. States form an
// append-only history; a state is never mutated once built.
type GameState struct {
	Board      Board
	Turn       int
	FirstTeam  *Team // the team that made turn 0
	SecondTeam *Team
	LastMove   *Move // the move that produced this state, nil for the first
}

// StartTeam returns the side that opened the game.
func (s *GameState) StartTeam() TeamID {
	return s.FirstTeam.ID
}

// CurrentTeam returns the team whose move it is: the start team on even
// turns, the other side on odd turns.
func (s *GameState) CurrentTeam() *Team {
	if s.Turn%2 == 0 {
		return s.FirstTeam
	}
	return s.SecondTeam
}

// OpponentTeam returns the team that is not current, i.e. the one that
// produced this state if a last move exists.
func (s *GameState) OpponentTeam() *Team {
	if s.Turn%2 == 0 {
		return s.SecondTeam
	}
	return s.FirstTeam
}

// TeamByID resolves a team identity to the state's team record.
func (s *GameState) TeamByID(id TeamID) *Team {
	if s.FirstTeam.ID == id {
		return s.FirstTeam
	}
	return s.SecondTeam
}

// PlacementPhase reports whether teams are still placing penguins.
func (s *GameState) PlacementPhase() bool {
	return s.Turn < 2*PenguinsPerTeam
}

// PossibleMoves enumerates the legal moves of the current team. During
// placement every free one-fish field is a destination; afterwards each
// penguin slides along the six hex directions until it hits a hole,
// another penguin, or the edge of the board.
func (s *GameState) PossibleMoves() []Move {
	team := s.CurrentTeam()
	var moves []Move
	if s.PlacementPhase() {
		for _, row := range s.Board.Rows() {
			for _, f := range row {
				if !f.Occupied() && f.Fish == 1 {
					moves = append(moves, Move{Team: team.ID, To: f.Coordinate})
				}
			}
		}
		return moves
	}
	for _, p := range s.Board.PenguinsOf(team.ID) {
		from := p.Coordinate
		for _, dir := range HexDirections {
			for c := from.Add(dir); ; c = c.Add(dir) {
				f, ok := s.Board.FieldAt(c)
				if !ok || f.Occupied() || f.Fish == 0 {
					break
				}
				origin := from
				moves = append(moves, Move{Team: team.ID, From: &origin, To: c})
			}
		}
	}
	return moves
}
