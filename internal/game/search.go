package game

import (
	"math"

	"quoridor-bot/internal/config"
)

// Depth policy: with plenty of walls in hand the wall subtree is worth
// the extra ply; with few walls a shallower search suffices.
const (
	depthWallThreshold = 4
	searchDepthDeep    = 3
	searchDepthShallow = 2
)

// IsTerminal reports whether either pawn already stands on its goal row.
func IsTerminal(state State) bool {
	return state.Positions.South.Row == GoalSouth ||
		state.Positions.North.Row == GoalNorth
}

// SearchBestMove runs the full alpha-beta search from the root with south
// as the maximizing player and returns the best move with its score. The
// move is nil only when move generation produced nothing at the root.
func SearchBestMove(state State, w config.HeuristicWeights) (*MoveChoice, float64) {
	depth := searchDepthShallow
	if state.WallsRemaining.South > depthWallThreshold {
		depth = searchDepthDeep
	}
	score, mv := minimax(state, depth, math.Inf(-1), math.Inf(1), South, w)
	return mv, score
}

// minimax alternates plies between south (maximizer) and north
// (minimizer), pruning with alpha-beta bounds. Ties keep the
// earliest-generated move: comparisons are strict in both directions, so
// the result is deterministic for a given state.
func minimax(state State, depth int, alpha, beta float64, player Player, w config.HeuristicWeights) (float64, *MoveChoice) {
	if depth == 0 || IsTerminal(state) {
		return Evaluate(state, w), nil
	}

	var bestMove *MoveChoice
	if player == South {
		bestScore := math.Inf(-1)
		for _, mv := range GenerateMoves(state, player, depth) {
			next, ok := ApplyMove(state, player, mv)
			if !ok {
				continue
			}
			score, _ := minimax(next, depth-1, alpha, beta, player.Opponent(), w)
			if score > bestScore {
				bestScore = score
				chosen := mv
				bestMove = &chosen
			}
			alpha = math.Max(alpha, bestScore)
			if beta <= alpha {
				break
			}
		}
		return bestScore, bestMove
	}

	bestScore := math.Inf(1)
	for _, mv := range GenerateMoves(state, player, depth) {
		next, ok := ApplyMove(state, player, mv)
		if !ok {
			continue
		}
		score, _ := minimax(next, depth-1, alpha, beta, player.Opponent(), w)
		if score < bestScore {
			bestScore = score
			chosen := mv
			bestMove = &chosen
		}
		beta = math.Min(beta, bestScore)
		if beta <= alpha {
			break
		}
	}
	return bestScore, bestMove
}
