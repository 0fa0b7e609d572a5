package game

import (
	"encoding/json"
	"fmt"
)

const (
	BoardSize = 9
	// Wall coordinates live on the (BoardSize-1)x(BoardSize-1) grid of
	// cell corners; a wall anchors at the top-left corner of a 2x2 block.
	WallGridSize = BoardSize - 1

	GoalSouth = 0
	GoalNorth = BoardSize - 1

	// InitialWalls is the per-side wall supply at game start.
	InitialWalls = 10
)

// Position is a 0-indexed (row, col) board cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Orientation is the axis of a wall segment.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "horizontal":
		*o = Horizontal
	case "vertical":
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation %q", s)
	}
	return nil
}

// Wall is a two-edge barrier anchored at a wall-grid cell.
type Wall struct {
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
}

// Positions holds both pawns. South races toward row 0, north toward
// row 8.
type Positions struct {
	North Position `json:"north"`
	South Position `json:"south"`
}

type WallsRemaining struct {
	North int `json:"north"`
	South int `json:"south"`
}

// Player identifies a side of the board.
type Player int

const (
	North Player = iota
	South
)

func (p Player) Opponent() Player {
	if p == North {
		return South
	}
	return North
}

func (p Player) String() string {
	if p == South {
		return "south"
	}
	return "north"
}

func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "north":
		*p = North
	case "south":
		*p = South
	default:
		return fmt.Errorf("unknown player %q", s)
	}
	return nil
}

// GoalRow is the row a side must reach to win.
func GoalRow(p Player) int {
	if p == South {
		return GoalSouth
	}
	return GoalNorth
}

// State is a full game position: both pawns, every placed wall in
// placement order, and the remaining wall supplies. The search never
// mutates a State in place; hypothetical moves operate on clones.
type State struct {
	Positions      Positions      `json:"positions"`
	Walls          []Wall         `json:"walls"`
	WallsRemaining WallsRemaining `json:"wallsRemaining"`
}

// NewState returns the standard starting position.
func NewState() State {
	return State{
		Positions: Positions{
			North: Position{Row: 0, Col: 4},
			South: Position{Row: 8, Col: 4},
		},
		WallsRemaining: WallsRemaining{North: InitialWalls, South: InitialWalls},
	}
}

// Clone deep-copies the state so sibling search branches never alias.
func (s State) Clone() State {
	next := s
	next.Walls = append([]Wall(nil), s.Walls...)
	return next
}

func (s State) PawnPos(p Player) Position {
	if p == South {
		return s.Positions.South
	}
	return s.Positions.North
}

func (s State) WallsLeft(p Player) int {
	if p == South {
		return s.WallsRemaining.South
	}
	return s.WallsRemaining.North
}

func (s *State) setPawnPos(p Player, pos Position) {
	if p == South {
		s.Positions.South = pos
	} else {
		s.Positions.North = pos
	}
}

// decrementWall saturates at zero; supplies never go negative.
func (s *State) decrementWall(p Player) {
	if p == South {
		if s.WallsRemaining.South > 0 {
			s.WallsRemaining.South--
		}
	} else {
		if s.WallsRemaining.North > 0 {
			s.WallsRemaining.North--
		}
	}
}

// MoveChoice is a tagged action: exactly one of Pawn or Wall is set.
type MoveChoice struct {
	Pawn *Position `json:"pawn,omitempty"`
	Wall *Wall     `json:"wall,omitempty"`
}

func PawnMove(pos Position) MoveChoice {
	return MoveChoice{Pawn: &pos}
}

func WallMove(w Wall) MoveChoice {
	return MoveChoice{Wall: &w}
}
