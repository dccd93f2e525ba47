package game

import "testing"

func TestHexConversionRoundTrip(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			cart := CartesianCoordinate{X: x, Y: y}
			hex := cart.ToHex()
			back := hex.ToCartesian()
			if back != cart {
				t.Errorf("round trip failed for (%d,%d): got (%d,%d)", x, y, back.X, back.Y)
			}
		}
	}
}

func TestHexConversionOddRowShift(t *testing.T) {
	even := CartesianCoordinate{X: 3, Y: 2}.ToHex()
	if even.X != 6 || even.Y != 2 {
		t.Errorf("even row: expected (6,2), got (%d,%d)", even.X, even.Y)
	}

	odd := CartesianCoordinate{X: 3, Y: 3}.ToHex()
	if odd.X != 7 || odd.Y != 3 {
		t.Errorf("odd row: expected (7,3), got (%d,%d)", odd.X, odd.Y)
	}
}

func TestNeighboursCount(t *testing.T) {
	n := Coordinate{X: 4, Y: 2}.Neighbours()
	if len(n) != 6 {
		t.Fatalf("expected 6 neighbours, got %d", len(n))
	}

	seen := make(map[Coordinate]bool)
	for _, c := range n {
		if seen[c] {
			t.Errorf("duplicate neighbour %+v", c)
		}
		seen[c] = true
	}
}
