package game

import (
	"testing"

	"quoridor-bot/internal/config"
)

func testWeights() config.HeuristicWeights {
	return config.Load().DefaultWeights
}

func TestEvaluateWinDominatesPositionalTerms(t *testing.T) {
	state := NewState()
	state.Positions.South = Position{Row: 0, Col: 0}
	state.Positions.North = Position{Row: 7, Col: 7}
	state.WallsRemaining = WallsRemaining{North: 10, South: 0}
	if score := Evaluate(state, testWeights()); score <= 9000 {
		t.Fatalf("south on goal row must dominate: score=%f", score)
	}
}

func TestEvaluateLossDominatesPositionalTerms(t *testing.T) {
	state := NewState()
	state.Positions.North = Position{Row: 8, Col: 0}
	state.Positions.South = Position{Row: 1, Col: 4}
	state.WallsRemaining = WallsRemaining{North: 0, South: 10}
	if score := Evaluate(state, testWeights()); score >= -9000 {
		t.Fatalf("north on goal row must dominate: score=%f", score)
	}
}

func TestEvaluateRewardsDistanceAdvantage(t *testing.T) {
	ahead := NewState()
	ahead.Positions.South = Position{Row: 2, Col: 4}

	behind := NewState()
	behind.Positions.North = Position{Row: 6, Col: 4}

	w := testWeights()
	if Evaluate(ahead, w) <= Evaluate(behind, w) {
		t.Fatalf("being closer to goal must score higher than the opponent being closer")
	}
}

func TestEvaluateWallSupplyTerm(t *testing.T) {
	rich := NewState()
	rich.WallsRemaining = WallsRemaining{North: 2, South: 10}

	poor := NewState()
	poor.WallsRemaining = WallsRemaining{North: 10, South: 2}

	w := testWeights()
	if Evaluate(rich, w) <= Evaluate(poor, w) {
		t.Fatalf("wall supply advantage must contribute positively")
	}
}
