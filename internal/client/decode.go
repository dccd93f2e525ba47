package client

import (
	"fmt"

	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

// DecodeBoard converts the raw wire board into the domain board. Each
// cell must be a non-negative fish count or one of the two team markers,
// and all rows must have the same length; anything else fails with a
// decode error. Decoding is deterministic and has no side effects.
func DecodeBoard(raw [][]protocol.FieldValue) (game.Board, error) {
	width := -1
	rows := make([][]game.Field, len(raw))
	for y, rawRow := range raw {
		if width == -1 {
			width = len(rawRow)
		} else if len(rawRow) != width {
			return game.Board{}, fmt.Errorf("%w: row %d has %d cells, expected %d",
				protocol.ErrDecode, y, len(rawRow), width)
		}

		row := make([]game.Field, len(rawRow))
		for x, cell := range rawRow {
			coord := game.CartesianCoordinate{X: x, Y: y}.ToHex()
			field, err := decodeField(coord, cell)
			if err != nil {
				return game.Board{}, err
			}
			row[x] = field
		}
		rows[y] = row
	}
	return game.NewBoard(rows), nil
}

func decodeField(coord game.Coordinate, cell protocol.FieldValue) (game.Field, error) {
	switch {
	case cell.Fish != nil:
		if *cell.Fish < 0 {
			return game.Field{}, fmt.Errorf("%w: negative fish count %d at %+v",
				protocol.ErrDecode, *cell.Fish, coord)
		}
		return game.Field{Coordinate: coord, Fish: *cell.Fish}, nil
	case cell.Team != nil:
		var team game.TeamID
		switch *cell.Team {
		case game.TeamOne.String():
			team = game.TeamOne
		case game.TeamTwo.String():
			team = game.TeamTwo
		default:
			return game.Field{}, fmt.Errorf("%w: unknown team marker %q at %+v",
				protocol.ErrDecode, *cell.Team, coord)
		}
		return game.Field{
			Coordinate: coord,
			Penguin:    &game.Penguin{Team: team, Coordinate: coord},
		}, nil
	default:
		return game.Field{}, fmt.Errorf("%w: invalid cell value %s at %+v",
			protocol.ErrDecode, cell.Raw, coord)
	}
}
