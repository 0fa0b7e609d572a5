package ws

import (
	"quoridor-bot/internal/game"
	"quoridor-bot/internal/shared"
)

type RoomManager interface {
	Get(roomCode string) (*shared.Room, bool)
	ApplyMove(room *shared.Room, playerID string, mv game.MoveChoice) error
	BotMove(room *shared.Room, botID string) (game.MoveChoice, error)
}
