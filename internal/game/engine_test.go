package game

import (
	"encoding/json"
	"testing"
)

const defaultMoveJSON = `{"type":"move","data":{"row":7,"col":4}}`

func TestBestMoveJSONMalformedInput(t *testing.T) {
	got := string(BestMoveJSON([]byte(`{"positions":`), testWeights()))
	if got != defaultMoveJSON {
		t.Fatalf("malformed input must yield the default move, got %s", got)
	}
}

func TestBestMoveJSONMissingPositions(t *testing.T) {
	got := string(BestMoveJSON([]byte(`{"walls":[]}`), testWeights()))
	if got != defaultMoveJSON {
		t.Fatalf("missing positions must yield the default move, got %s", got)
	}
}

func TestBestMoveJSONBadOrientation(t *testing.T) {
	input := `{
		"positions": {"north": {"row":0,"col":4}, "south": {"row":8,"col":4}},
		"walls": [{"row":3,"col":3,"orientation":"diagonal"}]
	}`
	got := string(BestMoveJSON([]byte(input), testWeights()))
	if got != defaultMoveJSON {
		t.Fatalf("unknown orientation must yield the default move, got %s", got)
	}
}

func TestBestMoveJSONOpeningAdvance(t *testing.T) {
	input := `{
		"positions": {"north": {"row":0,"col":4}, "south": {"row":8,"col":4}},
		"walls": [],
		"wallsRemaining": {"north":10,"south":10}
	}`
	var out struct {
		Type string   `json:"type"`
		Data Position `json:"data"`
	}
	if err := json.Unmarshal(BestMoveJSON([]byte(input), testWeights()), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Type != "move" {
		t.Fatalf("opening decision should be a pawn move, got %q", out.Type)
	}
	if out.Data.Row != 7 {
		t.Fatalf("opening move should advance to row 7, got %+v", out.Data)
	}
}

func TestBestMoveJSONTakesTheWin(t *testing.T) {
	input := `{
		"positions": {"north": {"row":4,"col":0}, "south": {"row":1,"col":4}},
		"walls": [],
		"wallsRemaining": {"north":10,"south":10}
	}`
	var out struct {
		Type string   `json:"type"`
		Data Position `json:"data"`
	}
	if err := json.Unmarshal(BestMoveJSON([]byte(input), testWeights()), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Type != "move" || out.Data.Row != 0 {
		t.Fatalf("expected winning move to row 0, got type=%q data=%+v", out.Type, out.Data)
	}
}

func TestBestMoveJSONNeverWallsWithoutSupply(t *testing.T) {
	input := `{
		"positions": {"north": {"row":0,"col":4}, "south": {"row":8,"col":4}},
		"walls": [],
		"wallsRemaining": {"north":10,"south":0}
	}`
	var out struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(BestMoveJSON([]byte(input), testWeights()), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Type == "wall" {
		t.Fatalf("wall output with an empty supply")
	}
}

func TestBestMoveJSONWallsRemainingDefaultsToZero(t *testing.T) {
	input := `{
		"positions": {"north": {"row":0,"col":4}, "south": {"row":8,"col":4}}
	}`
	var out struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(BestMoveJSON([]byte(input), testWeights()), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Type != "move" {
		t.Fatalf("absent wall counters default to zero, so only moves are possible; got %q", out.Type)
	}
}

func TestFallbackMovePicksSmallestRow(t *testing.T) {
	state := NewState()
	state.Positions.South = Position{Row: 5, Col: 4}
	got := fallbackMove(state.Positions.South, state)
	if got.Row != 4 {
		t.Fatalf("fallback should advance toward row 0, got %+v", got)
	}
}

func TestFallbackMoveWithoutLegalMoves(t *testing.T) {
	// Seal the south pawn in the corner; the fallback stands still.
	state := NewState()
	state.Positions.South = Position{Row: 0, Col: 0}
	state.Positions.North = Position{Row: 8, Col: 8}
	state.Walls = []Wall{
		{Row: 0, Col: 0, Orientation: Horizontal},
		{Row: 0, Col: 0, Orientation: Vertical},
	}
	got := fallbackMove(state.Positions.South, state)
	if got != state.Positions.South {
		t.Fatalf("expected current position, got %+v", got)
	}
}

func TestWallOutputShape(t *testing.T) {
	out := encodeOutput(BestMoveOutput{Type: "wall", Data: Wall{Row: 2, Col: 3, Orientation: Vertical}})
	want := `{"type":"wall","data":{"row":2,"col":3,"orientation":"vertical"}}`
	if string(out) != want {
		t.Fatalf("wall output mismatch:\n got %s\nwant %s", out, want)
	}
}
