package protocol

import "encoding/json"

// FieldValue is one raw board cell as the server sends it: a JSON
// number (fish count) or a JSON string (team marker). Any other JSON
// kind is kept verbatim in Raw so the board decoder can reject it with
// a useful message instead of failing at the transport layer.
type FieldValue struct {
	Fish *int    // set when the cell is a fish count
	Team *string // set when the cell is a team marker
	Raw  string  // original token, for error reporting
}

// UnmarshalJSON accepts a number or a string and records anything else
// as an invalid token.
func (f *FieldValue) UnmarshalJSON(b []byte) error {
	f.Fish = nil
	f.Team = nil
	f.Raw = string(b)

	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		f.Fish = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.Team = &s
		return nil
	}

	// Neither number nor string: defer the failure to the decoder.
	return nil
}

// MarshalJSON writes the cell back in wire form.
func (f FieldValue) MarshalJSON() ([]byte, error) {
	switch {
	case f.Fish != nil:
		return json.Marshal(*f.Fish)
	case f.Team != nil:
		return json.Marshal(*f.Team)
	default:
		return []byte(f.Raw), nil
	}
}

// FishCell builds a fish-count cell, mostly for tests.
func FishCell(n int) FieldValue {
	return FieldValue{Fish: &n}
}

// TeamCell builds a team-marker cell, mostly for tests.
func TeamCell(marker string) FieldValue {
	return FieldValue{Team: &marker}
}
