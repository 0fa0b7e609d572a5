package game

import "sort"

// Search-shaping knobs. These are tuned values, not derived ones; keep
// them named so they can be revisited independently of the algorithm.
const (
	// wallValueCutoff discards candidate walls scoring at or below it.
	wallValueCutoff = -200.0
	// Candidate caps bound the wall branching factor by remaining depth.
	wallCandidateCapDeep    = 12
	wallCandidateCapShallow = 8

	wallBlockingGainWeight = 25.0
	wallSelfPenaltyWeight  = 18.0
	wallSelfDistanceWeight = 2.0
	wallProximityWeight    = 4.0
)

// CanPlaceWall checks a candidate wall for structural validity and path
// preservation: in bounds, no perpendicular wall on the same grid cell,
// neither of its edges already blocked, and both pawns still have a plain
// route to their goal rows afterwards.
func CanPlaceWall(candidate Wall, walls []Wall, positions Positions) bool {
	if candidate.Row < 0 || candidate.Col < 0 ||
		candidate.Row >= WallGridSize || candidate.Col >= WallGridSize {
		return false
	}

	for _, w := range walls {
		if w.Row == candidate.Row && w.Col == candidate.Col && w.Orientation != candidate.Orientation {
			return false
		}
	}

	blocked := BlockedEdges(walls)
	candidateEdges := WallEdges(candidate)
	for _, e := range candidateEdges {
		if _, ok := blocked[e]; ok {
			return false
		}
	}
	for _, e := range candidateEdges {
		blocked[e] = struct{}{}
	}

	return HasPath(positions.North, GoalNorth, blocked) &&
		HasPath(positions.South, GoalSouth, blocked)
}

// wallValue scores a legal candidate wall for player: how much it
// lengthens the opponent's shortest path versus the player's own, plus
// positional shaping around the opponent's pawn.
func wallValue(state State, w Wall, player Player, blocked EdgeSet) float64 {
	nextWalls := append(append([]Wall(nil), state.Walls...), w)
	nextBlocked := BlockedEdges(nextWalls)

	selfPos := state.PawnPos(player)
	oppPos := state.PawnPos(player.Opponent())
	oppGoal := GoalRow(player.Opponent())
	selfGoal := GoalRow(player)

	oppBefore := ShortestDistance(oppPos, oppGoal, blocked, selfPos)
	oppAfter := ShortestDistance(oppPos, oppGoal, nextBlocked, selfPos)
	selfBefore := ShortestDistance(selfPos, selfGoal, blocked, oppPos)
	selfAfter := ShortestDistance(selfPos, selfGoal, nextBlocked, oppPos)

	blockingGain := float64(oppAfter - oppBefore)
	selfPenalty := float64(selfAfter - selfBefore)

	distToOpp := abs(w.Row-oppPos.Row) + abs(w.Col-oppPos.Col)
	distToSelf := abs(w.Row-selfPos.Row) + abs(w.Col-selfPos.Col)

	var orientationBonus float64
	if w.Orientation == Horizontal {
		if w.Row > oppPos.Row {
			orientationBonus = 4
		} else {
			orientationBonus = 2
		}
	} else {
		if abs(w.Col-oppPos.Col) <= 1 {
			orientationBonus = 5
		} else {
			orientationBonus = 3
		}
	}

	return blockingGain*wallBlockingGainWeight -
		selfPenalty*wallSelfPenaltyWeight +
		orientationBonus -
		float64(distToSelf)*wallSelfDistanceWeight +
		float64(max(0, 4-distToOpp))*wallProximityWeight
}

type scoredWall struct {
	value float64
	wall  Wall
}

// wallCandidates returns the legal wall placements worth exploring,
// ranked best-first and truncated to the depth-dependent cap.
func wallCandidates(state State, player Player, depth int, blocked EdgeSet) []Wall {
	var candidates []scoredWall
	for _, orientation := range []Orientation{Horizontal, Vertical} {
		for row := 0; row < WallGridSize; row++ {
			for col := 0; col < WallGridSize; col++ {
				w := Wall{Row: row, Col: col, Orientation: orientation}
				if !CanPlaceWall(w, state.Walls, state.Positions) {
					continue
				}
				if value := wallValue(state, w, player, blocked); value > wallValueCutoff {
					candidates = append(candidates, scoredWall{value: value, wall: w})
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].value > candidates[j].value
	})

	limit := wallCandidateCapShallow
	if depth > 2 {
		limit = wallCandidateCapDeep
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	walls := make([]Wall, len(candidates))
	for i, c := range candidates {
		walls[i] = c.wall
	}
	return walls
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
