package shared

import (
	"time"

	"quoridor-bot/internal/config"
	"quoridor-bot/internal/game"
)

type Room struct {
	Code       string             `json:"code"`
	State      game.State         `json:"state"`
	Players    []Player           `json:"players"`
	TurnIdx    int                `json:"turn_idx"`
	WinnerID   *string            `json:"winner_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Cfg        config.Config      `json:"-"`
	RoomConfig *config.RoomConfig `json:"room_config,omitempty"`
	Status     string             `json:"status"` // "lobby" or "playing"
}

type Player struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	IsBot bool        `json:"isBot"`
	Side  game.Player `json:"side"`
}

// Move is the wire form of one player action.
type Move struct {
	PlayerID string          `json:"player_id"`
	Move     game.MoveChoice `json:"move"`
}
