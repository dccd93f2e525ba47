package client

import (
	"errors"
	"reflect"
	"testing"

	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

func rawBoard(rows ...[]protocol.FieldValue) [][]protocol.FieldValue {
	return rows
}

func TestDecodeBoardIsDeterministic(t *testing.T) {
	raw := rawBoard(
		[]protocol.FieldValue{protocol.FishCell(1), protocol.TeamCell("ONE")},
		[]protocol.FieldValue{protocol.TeamCell("TWO"), protocol.FishCell(3)},
	)

	first, err := DecodeBoard(raw)
	if err != nil {
		t.Fatalf("DecodeBoard failed: %v", err)
	}
	second, err := DecodeBoard(raw)
	if err != nil {
		t.Fatalf("second DecodeBoard failed: %v", err)
	}
	if !reflect.DeepEqual(first.Rows(), second.Rows()) {
		t.Error("decoding the same input twice produced different boards")
	}
}

func TestDecodeBoardCells(t *testing.T) {
	raw := rawBoard(
		[]protocol.FieldValue{protocol.FishCell(2), protocol.TeamCell("ONE")},
		[]protocol.FieldValue{protocol.TeamCell("TWO"), protocol.FishCell(0)},
	)

	board, err := DecodeBoard(raw)
	if err != nil {
		t.Fatalf("DecodeBoard failed: %v", err)
	}

	fish, ok := board.FieldAt(game.CartesianCoordinate{X: 0, Y: 0}.ToHex())
	if !ok || fish.Fish != 2 || fish.Occupied() {
		t.Errorf("expected a 2-fish cell, got %+v", fish)
	}

	one, _ := board.FieldAt(game.CartesianCoordinate{X: 1, Y: 0}.ToHex())
	if !one.Occupied() || one.Penguin.Team != game.TeamOne {
		t.Errorf("expected a ONE penguin, got %+v", one)
	}
	if one.Fish != 0 {
		t.Errorf("occupied cell must hold zero fish, got %d", one.Fish)
	}

	two, _ := board.FieldAt(game.CartesianCoordinate{X: 0, Y: 1}.ToHex())
	if !two.Occupied() || two.Penguin.Team != game.TeamTwo {
		t.Errorf("expected a TWO penguin, got %+v", two)
	}
	if two.Penguin.Coordinate != two.Coordinate {
		t.Errorf("penguin coordinate %+v does not match its field %+v",
			two.Penguin.Coordinate, two.Coordinate)
	}
}

func TestDecodeBoardRejectsUnknownMarker(t *testing.T) {
	raw := rawBoard([]protocol.FieldValue{protocol.TeamCell("THREE")})
	if _, err := DecodeBoard(raw); !errors.Is(err, protocol.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeBoardRejectsInvalidToken(t *testing.T) {
	raw := rawBoard([]protocol.FieldValue{{Raw: `{"weird":true}`}})
	if _, err := DecodeBoard(raw); !errors.Is(err, protocol.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeBoardRejectsNegativeFish(t *testing.T) {
	raw := rawBoard([]protocol.FieldValue{protocol.FishCell(-1)})
	if _, err := DecodeBoard(raw); !errors.Is(err, protocol.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeBoardRejectsRaggedGrid(t *testing.T) {
	raw := rawBoard(
		[]protocol.FieldValue{protocol.FishCell(1), protocol.FishCell(1)},
		[]protocol.FieldValue{protocol.FishCell(1)},
	)
	if _, err := DecodeBoard(raw); !errors.Is(err, protocol.ErrDecode) {
		t.Fatalf("expected decode error for ragged grid, got %v", err)
	}
}
