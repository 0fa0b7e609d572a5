package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"quoridor-bot/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string      `json:"action"`
			Data   interface{} `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		switch msg.Action {
		case "human_move":
			h.handleHumanMove(roomCode, msg.Data)
		case "bot_move":
			h.handleBotMove(roomCode)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) handleHumanMove(roomCode string, data interface{}) {
	var move struct {
		PlayerID string          `json:"player_id"`
		Move     game.MoveChoice `json:"move"`
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal move data: %v", err)
		return
	}
	if err := json.Unmarshal(rawData, &move); err != nil {
		log.Printf("Invalid move data: %v", err)
		return
	}

	room, ok := h.roomManager.Get(roomCode)
	if !ok {
		log.Printf("Room not found: %s", roomCode)
		return
	}

	if err := h.roomManager.ApplyMove(room, move.PlayerID, move.Move); err != nil {
		log.Printf("Failed to apply move: %v", err)
		return
	}

	// If it's now the bot's turn, answer with the bot's move.
	currentPlayer := room.Players[room.TurnIdx]
	if currentPlayer.IsBot && room.WinnerID == nil {
		go func() {
			if _, err := h.roomManager.BotMove(room, currentPlayer.ID); err != nil {
				log.Printf("Failed to process bot move: %v", err)
			}
		}()
	}
}

func (h *Hub) handleBotMove(roomCode string) {
	room, ok := h.roomManager.Get(roomCode)
	if !ok {
		log.Printf("Room not found: %s", roomCode)
		return
	}
	currentPlayer := room.Players[room.TurnIdx]
	if !currentPlayer.IsBot {
		return
	}
	if _, err := h.roomManager.BotMove(room, currentPlayer.ID); err != nil {
		log.Printf("Failed to process bot move: %v", err)
	}
}
