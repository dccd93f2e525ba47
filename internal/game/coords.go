// Package game holds the pure domain model for the penguin board game:
// hex coordinates, the board, teams, moves and reconstructed game states.
// It contains no external dependencies so the rules logic stays testable
// on its own.
package game

// Coordinate is a position in the doubled-width hex system the server
// speaks. On even rows x is even, on odd rows x is odd. Immutable.
type Coordinate struct {
	X, Y int
}

// CartesianCoordinate is a plain array-index position: column x, row y.
// It only exists at the edge where raw board rows are decoded.
type CartesianCoordinate struct {
	X, Y int
}

// ToHex converts array indices to the hex system: the column is doubled
// and odd rows are shifted right by one.
func (c CartesianCoordinate) ToHex() Coordinate {
	return Coordinate{X: c.X*2 + c.Y%2, Y: c.Y}
}

// ToCartesian converts a hex coordinate back to array indices.
func (c Coordinate) ToCartesian() CartesianCoordinate {
	return CartesianCoordinate{X: (c.X - c.Y%2) / 2, Y: c.Y}
}

// Add returns the coordinate shifted by the given offset.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// HexDirections are the offsets of the six hex neighbours in doubled
// coordinates, in no particular order.
var HexDirections = [6]Coordinate{
	{X: 2, Y: 0},
	{X: -2, Y: 0},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// Neighbours returns the six adjacent hex coordinates. Some of them may
// lie outside the board; callers filter with Board.FieldAt.
func (c Coordinate) Neighbours() []Coordinate {
	out := make([]Coordinate, 0, len(HexDirections))
	for _, d := range HexDirections {
		out = append(out, c.Add(d))
	}
	return out
}
