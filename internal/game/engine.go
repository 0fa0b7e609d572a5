package game

import (
	"encoding/json"
	"log"
	"sync"

	"quoridor-bot/internal/config"
)

var diagnosticsOnce sync.Once

// InitDiagnostics installs process-wide log defaults. Called at the top
// of every engine entry point; only the first call has any effect.
func InitDiagnostics() {
	diagnosticsOnce.Do(func() {
		log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	})
}

// BestMove decides south's move for the given state. If the search comes
// back empty (possible only for degenerate inputs) it falls back to the
// pawn move closest to the goal row, or standing still when the pawn has
// no legal move at all.
func BestMove(state State, w config.HeuristicWeights) MoveChoice {
	if mv, _ := SearchBestMove(state, w); mv != nil {
		return *mv
	}
	return PawnMove(fallbackMove(state.Positions.South, state))
}

func fallbackMove(current Position, state State) Position {
	blocked := BlockedEdges(state.Walls)
	best := current
	bestRow := BoardSize
	for _, mv := range ValidPawnMoves(current, state.Positions.North, blocked) {
		if mv.Row <= bestRow {
			bestRow = mv.Row
			best = mv
		}
	}
	return best
}

// StateInput is the external state representation. Positions is a
// pointer so a missing field is distinguishable from the zero value and
// treated as a malformed request.
type StateInput struct {
	Positions      *Positions     `json:"positions"`
	Walls          []Wall         `json:"walls"`
	WallsRemaining WallsRemaining `json:"wallsRemaining"`
}

// BestMoveOutput is the decision record sent back to the host.
type BestMoveOutput struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// defaultOutput is what a malformed request degrades to: a fixed opening
// advance for south.
func defaultOutput() BestMoveOutput {
	return BestMoveOutput{Type: "move", Data: Position{Row: 7, Col: 4}}
}

// BestMoveJSON is the blob-in/blob-out boundary: it parses the external
// state, runs the search, and serializes the chosen action. It never
// fails: malformed input yields the default move, an empty search result
// yields the fallback move, and an encoding failure yields "{}".
func BestMoveJSON(raw []byte, w config.HeuristicWeights) []byte {
	InitDiagnostics()

	var input StateInput
	if err := json.Unmarshal(raw, &input); err != nil || input.Positions == nil {
		return encodeOutput(defaultOutput())
	}

	state := State{
		Positions:      *input.Positions,
		Walls:          input.Walls,
		WallsRemaining: input.WallsRemaining,
	}

	mv := BestMove(state, w)
	switch {
	case mv.Pawn != nil:
		return encodeOutput(BestMoveOutput{Type: "move", Data: *mv.Pawn})
	case mv.Wall != nil:
		return encodeOutput(BestMoveOutput{Type: "wall", Data: *mv.Wall})
	}
	return encodeOutput(BestMoveOutput{Type: "move", Data: fallbackMove(state.Positions.South, state)})
}

func encodeOutput(out BestMoveOutput) []byte {
	data, err := json.Marshal(out)
	if err != nil {
		return []byte("{}")
	}
	return data
}
