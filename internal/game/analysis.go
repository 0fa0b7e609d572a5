package game

// Analysis is a positional snapshot for observers: how far each side is
// from its goal row and how many pawn moves each side has available.
type Analysis struct {
	NorthDistance int `json:"northDistance"`
	SouthDistance int `json:"southDistance"`
	NorthMobility int `json:"northMobility"`
	SouthMobility int `json:"southMobility"`
	WallsPlaced   int `json:"wallsPlaced"`
}

func Analyze(state State) Analysis {
	blocked := BlockedEdges(state.Walls)
	return Analysis{
		NorthDistance: ShortestDistance(state.Positions.North, GoalNorth, blocked, state.Positions.South),
		SouthDistance: ShortestDistance(state.Positions.South, GoalSouth, blocked, state.Positions.North),
		NorthMobility: len(ValidPawnMoves(state.Positions.North, state.Positions.South, blocked)),
		SouthMobility: len(ValidPawnMoves(state.Positions.South, state.Positions.North, blocked)),
		WallsPlaced:   len(state.Walls),
	}
}

// Winner returns the side standing on its goal row, if any.
func Winner(state State) (Player, bool) {
	if state.Positions.South.Row == GoalSouth {
		return South, true
	}
	if state.Positions.North.Row == GoalNorth {
		return North, true
	}
	return 0, false
}
