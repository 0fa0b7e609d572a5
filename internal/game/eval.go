package game

import (
	"math"

	"quoridor-bot/internal/config"
)

// Row-advancement exponents. Asymmetric on purpose: the bot's forward
// progress is shaped slightly more aggressively than the opponent's.
const (
	advanceExponent = 1.4
	retreatExponent = 1.35
)

// aggressionRange is the Manhattan distance under which the proximity
// bonus applies.
const aggressionRange = 3

// Evaluate scores a state from south's (the bot's) perspective. Positive
// favors south. Combines shortest-path differential, column centering,
// row-advancement shaping, mobility, proximity aggression, wall supply,
// and terminal overrides that dominate every positional term.
func Evaluate(state State, w config.HeuristicWeights) float64 {
	blocked := BlockedEdges(state.Walls)
	botDist := float64(ShortestDistance(state.Positions.South, GoalSouth, blocked, state.Positions.North))
	oppDist := float64(ShortestDistance(state.Positions.North, GoalNorth, blocked, state.Positions.South))

	score := (oppDist - botDist) * w.WDistance

	botRow := float64(state.Positions.South.Row)
	botCol := float64(state.Positions.South.Col)
	oppRow := float64(state.Positions.North.Row)
	oppCol := float64(state.Positions.North.Col)

	score += (4 - math.Abs(botCol-4)) * w.WCenterBonus
	score -= (4 - math.Abs(oppCol-4)) * w.WCenterPenalty

	score += math.Pow(8-botRow, advanceExponent) * w.WAdvance
	score -= math.Pow(oppRow, retreatExponent) * w.WRetreat

	botMoves := ValidPawnMoves(state.Positions.South, state.Positions.North, blocked)
	oppMoves := ValidPawnMoves(state.Positions.North, state.Positions.South, blocked)
	score += float64(len(botMoves)-len(oppMoves)) * w.WMobility

	if math.Abs(botRow-oppRow)+math.Abs(botCol-oppCol) < aggressionRange && botRow < oppRow {
		score += w.WAggression
	}

	score += float64(state.WallsRemaining.South-state.WallsRemaining.North) * w.WWallDiff

	if state.Positions.South.Row == GoalSouth {
		score += w.WWin
	}
	if state.Positions.North.Row == GoalNorth {
		score -= w.WWin
	}

	return score
}
