package game

import "sort"

// ValidPawnMoves lists every legal pawn destination from current, given
// the opponent's pawn and the blocked-edge set. Includes straight jumps
// over an adjacent opponent and the diagonal jumps allowed when the
// straight jump is blocked or off-board. The result is sorted by
// (row, col) and deduplicated.
func ValidPawnMoves(current, opponent Position, blocked EdgeSet) []Position {
	var moves []Position
	for _, delta := range cardinalDeltas {
		adjacent := Position{Row: current.Row + delta[0], Col: current.Col + delta[1]}
		if !adjacent.InBounds() || blocked.Blocked(current, adjacent) {
			continue
		}

		if adjacent != opponent {
			moves = append(moves, adjacent)
			continue
		}

		// Opponent occupies the square: try the straight jump first.
		jump := Position{Row: adjacent.Row + delta[0], Col: adjacent.Col + delta[1]}
		if jump.InBounds() && !blocked.Blocked(adjacent, jump) {
			moves = append(moves, jump)
			continue
		}

		// Straight jump unavailable; the two perpendicular diagonals are
		// legal if reachable from the opponent's square.
		var perpendiculars [2][2]int
		if delta[1] == 0 {
			perpendiculars = [2][2]int{{0, -1}, {0, 1}}
		} else {
			perpendiculars = [2][2]int{{-1, 0}, {1, 0}}
		}
		for _, diag := range perpendiculars {
			diagonal := Position{Row: adjacent.Row + diag[0], Col: adjacent.Col + diag[1]}
			if diagonal.InBounds() &&
				!blocked.Blocked(adjacent, diagonal) &&
				!blocked.Blocked(current, adjacent) {
				moves = append(moves, diagonal)
			}
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Row != moves[j].Row {
			return moves[i].Row < moves[j].Row
		}
		return moves[i].Col < moves[j].Col
	})
	deduped := moves[:0]
	for i, m := range moves {
		if i == 0 || m != moves[i-1] {
			deduped = append(deduped, m)
		}
	}
	return deduped
}

// GenerateMoves enumerates the moves the search explores for player:
// every pawn move first, then the ranked wall candidates (only while the
// player still has walls to spend).
func GenerateMoves(state State, player Player, depth int) []MoveChoice {
	blocked := BlockedEdges(state.Walls)
	selfPos := state.PawnPos(player)
	oppPos := state.PawnPos(player.Opponent())

	var moves []MoveChoice
	for _, pos := range ValidPawnMoves(selfPos, oppPos, blocked) {
		moves = append(moves, PawnMove(pos))
	}

	if state.WallsLeft(player) > 0 {
		for _, w := range wallCandidates(state, player, depth, blocked) {
			moves = append(moves, WallMove(w))
		}
	}
	return moves
}

// ApplyMove returns the successor state after player makes mv, or false
// if the move is an illegal wall placement. The input state is never
// mutated.
func ApplyMove(state State, player Player, mv MoveChoice) (State, bool) {
	next := state.Clone()
	switch {
	case mv.Pawn != nil:
		next.setPawnPos(player, *mv.Pawn)
		return next, true
	case mv.Wall != nil:
		if !CanPlaceWall(*mv.Wall, state.Walls, state.Positions) {
			return State{}, false
		}
		next.Walls = append(next.Walls, *mv.Wall)
		next.decrementWall(player)
		return next, true
	}
	return State{}, false
}
