package http

import "quoridor-bot/internal/game"

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// PlayRequest represents the payload for /play.
type PlayRequest struct {
	RoomCode string `json:"roomCode"`
}

// MoveRequest represents a player move: either a pawn destination or a
// wall placement.
type MoveRequest struct {
	RoomCode string          `json:"roomCode"`
	PlayerID string          `json:"playerId"`
	Move     game.MoveChoice `json:"move"`
}

// MoveBotRequest represents a bot move trigger.
type MoveBotRequest struct {
	RoomCode string `json:"roomCode"`
	BotID    string `json:"botId"`
}
