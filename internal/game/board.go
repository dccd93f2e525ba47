package game

// TeamID identifies one of the two sides of a game.
type TeamID int

const (
	TeamOne TeamID = iota
	TeamTwo
)

// String returns the wire marker for the team ("ONE" or "TWO").
func (t TeamID) String() string {
	if t == TeamOne {
		return "ONE"
	}
	return "TWO"
}

// Opponent returns the other side.
func (t TeamID) Opponent() TeamID {
	if t == TeamOne {
		return TeamTwo
	}
	return TeamOne
}

// Index returns the team's fixed slot in per-team arrays sent by the
// server: ONE is slot 0, TWO is slot 1.
func (t TeamID) Index() int {
	return int(t)
}

// Penguin is one piece on the board. Penguins are recreated whenever a
// state is reconstructed and never mutated afterwards.
type Penguin struct {
	Team       TeamID
	Coordinate Coordinate
}

// Field is one board cell. A field is either occupied by a penguin
// (Penguin non-nil, Fish zero) or holds a fish count.
type Field struct {
	Coordinate Coordinate
	Fish       int
	Penguin    *Penguin
}

// Occupied reports whether a penguin stands on the field.
func (f Field) Occupied() bool {
	return f.Penguin != nil
}

// Board is a rectangular grid of fields addressed by hex coordinates.
// Row 0 is the top row; odd rows are shifted half a field to the right.
type Board struct {
	fields [][]Field
}

// NewBoard wraps decoded rows into a board. Rows must already be
// rectangular; the decoder enforces that.
func NewBoard(fields [][]Field) Board {
	return Board{fields: fields}
}

// Height returns the number of rows.
func (b Board) Height() int {
	return len(b.fields)
}

// Width returns the number of fields per row.
func (b Board) Width() int {
	if len(b.fields) == 0 {
		return 0
	}
	return len(b.fields[0])
}

// Rows exposes the fields in row order for iteration and rendering.
func (b Board) Rows() [][]Field {
	return b.fields
}

// FieldAt resolves a hex coordinate to its field. The second return
// value is false when the coordinate lies outside the board.
func (b Board) FieldAt(c Coordinate) (Field, bool) {
	cart := c.ToCartesian()
	if cart.Y < 0 || cart.Y >= b.Height() || cart.X < 0 || cart.X >= b.Width() {
		return Field{}, false
	}
	return b.fields[cart.Y][cart.X], true
}

// PenguinsOf collects the penguins of one team in row order.
func (b Board) PenguinsOf(team TeamID) []Penguin {
	var out []Penguin
	for _, row := range b.fields {
		for _, f := range row {
			if f.Penguin != nil && f.Penguin.Team == team {
				out = append(out, *f.Penguin)
			}
		}
	}
	return out
}
