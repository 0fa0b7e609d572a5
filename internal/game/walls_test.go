package game

import "testing"

func startPositions() Positions {
	return Positions{
		North: Position{Row: 0, Col: 4},
		South: Position{Row: 8, Col: 4},
	}
}

func TestCanPlaceWallBounds(t *testing.T) {
	cases := []Wall{
		{Row: -1, Col: 0, Orientation: Horizontal},
		{Row: 0, Col: -1, Orientation: Vertical},
		{Row: WallGridSize, Col: 0, Orientation: Horizontal},
		{Row: 0, Col: WallGridSize, Orientation: Vertical},
	}
	for _, w := range cases {
		if CanPlaceWall(w, nil, startPositions()) {
			t.Fatalf("out-of-bounds wall %+v accepted", w)
		}
	}
}

func TestCanPlaceWallPerpendicularCollocation(t *testing.T) {
	existing := []Wall{{Row: 4, Col: 4, Orientation: Horizontal}}
	if CanPlaceWall(Wall{Row: 4, Col: 4, Orientation: Vertical}, existing, startPositions()) {
		t.Fatalf("crossing wall on the same grid cell accepted")
	}
}

func TestCanPlaceWallDuplicateCaughtByEdgeOverlap(t *testing.T) {
	// An exact duplicate is not rejected by the collocation check, but
	// its edges are already blocked.
	existing := []Wall{{Row: 4, Col: 4, Orientation: Horizontal}}
	if CanPlaceWall(Wall{Row: 4, Col: 4, Orientation: Horizontal}, existing, startPositions()) {
		t.Fatalf("duplicate wall accepted")
	}
}

func TestCanPlaceWallOverlappingNeighbor(t *testing.T) {
	existing := []Wall{{Row: 4, Col: 4, Orientation: Horizontal}}
	if CanPlaceWall(Wall{Row: 4, Col: 5, Orientation: Horizontal}, existing, startPositions()) {
		t.Fatalf("wall sharing a blocked edge accepted")
	}
	if !CanPlaceWall(Wall{Row: 4, Col: 6, Orientation: Horizontal}, existing, startPositions()) {
		t.Fatalf("non-overlapping neighbor wall rejected")
	}
}

func TestCanPlaceWallNeverTrapsAPlayer(t *testing.T) {
	positions := Positions{
		North: Position{Row: 0, Col: 0},
		South: Position{Row: 8, Col: 8},
	}
	// A vertical wall at (0,0) leaves north only the downward exit; a
	// horizontal wall at (1,0) would seal it.
	existing := []Wall{{Row: 0, Col: 0, Orientation: Vertical}}
	if CanPlaceWall(Wall{Row: 1, Col: 0, Orientation: Horizontal}, existing, positions) {
		t.Fatalf("trapping wall accepted")
	}
	// The same wall one column over leaves a route open.
	if !CanPlaceWall(Wall{Row: 1, Col: 2, Orientation: Horizontal}, existing, positions) {
		t.Fatalf("non-trapping wall rejected")
	}
}

func TestWallValuePrefersWallsNearOpponent(t *testing.T) {
	state := NewState()
	blocked := BlockedEdges(state.Walls)
	near := wallValue(state, Wall{Row: 0, Col: 4, Orientation: Horizontal}, South, blocked)
	far := wallValue(state, Wall{Row: 6, Col: 0, Orientation: Horizontal}, South, blocked)
	if near <= far {
		t.Fatalf("wall near the opponent should outscore a remote one: near=%f far=%f", near, far)
	}
}
