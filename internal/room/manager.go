package room

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"quoridor-bot/internal/config"
	"quoridor-bot/internal/game"
	"quoridor-bot/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
}

type Manager struct {
	store Store
	cfg   *config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg *config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

func (m *Manager) broadcast(roomCode, action string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(roomCode, action, data)
}

// CreateRoom opens a room with a single human player seated north. North
// moves first once the bot is seated.
func (m *Manager) CreateRoom(creatorName string) *shared.Room {
	if creatorName == "" {
		creatorName = "Player"
	}
	code := randCode(6)
	r := &shared.Room{
		Code:       code,
		State:      game.NewState(),
		TurnIdx:    0,
		CreatedAt:  time.Now(),
		Cfg:        *m.cfg,
		RoomConfig: config.NewRoomConfig(code),
		Status:     "lobby",
		Players: []shared.Player{
			{
				ID:   uuid.NewString(),
				Name: creatorName,
				Side: game.North,
			},
		},
	}
	m.store.SaveRoom(r)
	return r
}

// AddBot seats the bot on the south side and starts the game. The engine
// maximizes for south, so the bot always takes that seat.
func (m *Manager) AddBot(r *shared.Room) error {
	for _, p := range r.Players {
		if p.IsBot {
			return errors.New("room already has a bot")
		}
	}
	r.Players = append(r.Players, shared.Player{
		ID:    "bot-" + uuid.NewString(),
		Name:  "Bot",
		IsBot: true,
		Side:  game.South,
	})
	r.Status = "playing"
	m.store.SaveRoom(r)
	return nil
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) currentPlayer(r *shared.Room) *shared.Player {
	if len(r.Players) == 0 {
		return nil
	}
	return &r.Players[r.TurnIdx%len(r.Players)]
}

// ApplyMove validates and applies one action for playerID: a pawn move
// checked against the jump-aware move list, or a wall placement checked
// for supply and legality. Detects the winner and advances the turn.
func (m *Manager) ApplyMove(r *shared.Room, playerID string, mv game.MoveChoice) error {
	if r.WinnerID != nil {
		return errors.New("game is over")
	}
	cp := m.currentPlayer(r)
	if cp == nil || cp.ID != playerID {
		return errors.New("not your turn or player invalid")
	}

	side := cp.Side
	switch {
	case mv.Pawn != nil:
		blocked := game.BlockedEdges(r.State.Walls)
		legal := false
		for _, pos := range game.ValidPawnMoves(r.State.PawnPos(side), r.State.PawnPos(side.Opponent()), blocked) {
			if pos == *mv.Pawn {
				legal = true
				break
			}
		}
		if !legal {
			return errors.New("illegal pawn move")
		}
	case mv.Wall != nil:
		if r.State.WallsLeft(side) == 0 {
			return errors.New("no walls remaining")
		}
		if !game.CanPlaceWall(*mv.Wall, r.State.Walls, r.State.Positions) {
			return errors.New("illegal wall placement")
		}
	default:
		return errors.New("empty move")
	}

	next, ok := game.ApplyMove(r.State, side, mv)
	if !ok {
		return errors.New("illegal move")
	}
	r.State = next

	if winner, over := game.Winner(r.State); over {
		for i := range r.Players {
			if r.Players[i].Side == winner {
				id := r.Players[i].ID
				r.WinnerID = &id
				break
			}
		}
		r.Status = "finished"
		m.broadcast(r.Code, "game_over", gin.H{
			"winner": r.WinnerID,
			"state":  r.State,
		})
		m.store.SaveRoom(r)
		return nil
	}

	r.TurnIdx = (r.TurnIdx + 1) % len(r.Players)
	m.broadcast(r.Code, "move", gin.H{
		"playerID": playerID,
		"move":     mv,
		"state":    r.State,
		"nextTurn": r.Players[r.TurnIdx].ID,
	})
	m.store.SaveRoom(r)
	return nil
}

// BotMove runs the search for the bot and applies the chosen action.
func (m *Manager) BotMove(r *shared.Room, botID string) (game.MoveChoice, error) {
	cp := m.currentPlayer(r)
	if cp == nil || cp.ID != botID {
		return game.MoveChoice{}, errors.New("not bot's turn")
	}
	if !cp.IsBot {
		return game.MoveChoice{}, errors.New("player is not a bot")
	}

	weights := m.cfg.DefaultWeights
	if r.RoomConfig != nil {
		weights = r.RoomConfig.GetWeights()
	}

	mv := game.BestMove(r.State, weights)
	if err := m.ApplyMove(r, botID, mv); err != nil {
		log.Printf("bot move rejected: %v", err)
		return game.MoveChoice{}, err
	}

	m.broadcast(r.Code, "bot_move", gin.H{
		"botID": botID,
		"move":  mv,
		"state": r.State,
	})
	return mv, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
