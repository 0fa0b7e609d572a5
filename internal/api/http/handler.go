package http

import (
	"io"
	"net/http"

	"quoridor-bot/internal/api/ws"
	"quoridor-bot/internal/config"
	"quoridor-bot/internal/game"
	"quoridor-bot/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Create new room
// @Description Create a new room with a single human player on the north side
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "room": rx})
	}
}

// @Summary Seat the bot
// @Description Adds the bot on the south side and starts the game
// @Tags Room
// @Accept json
// @Produce json
// @Param request body PlayRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /play [post]
func PlayHandler(rm *room.Manager, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.AddBot(rx); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hub.Broadcast(req.RoomCode, "state-updated", gin.H{"room": rx})
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Get possible moves for a player
// @Description Returns legal pawn destinations and the remaining wall supply
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param playerId query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Query("roomCode")
		playerID := c.Query("playerId")
		rx, ok := rm.Get(roomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		var side game.Player
		found := false
		for i := range rx.Players {
			if rx.Players[i].ID == playerID {
				side = rx.Players[i].Side
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player not found"})
			return
		}
		blocked := game.BlockedEdges(rx.State.Walls)
		moves := game.ValidPawnMoves(rx.State.PawnPos(side), rx.State.PawnPos(side.Opponent()), blocked)
		c.JSON(http.StatusOK, gin.H{
			"pawnMoves":      moves,
			"wallsRemaining": rx.State.WallsLeft(side),
		})
	}
}

// @Summary Player makes a move
// @Description Submit a pawn destination or a wall placement
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.ApplyMove(rx, req.PlayerID, req.Move); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"room":   rx,
			"winner": rx.WinnerID,
		})
	}
}

// @Summary Let bot make its move
// @Description Bot picks the best move using the alpha-beta search
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveBotRequest true "Bot move"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		botID := req.BotID
		if botID == "" {
			for _, p := range rx.Players {
				if p.IsBot {
					botID = p.ID
					break
				}
			}
		}
		mv, err := rm.BotMove(rx, botID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"move":   mv,
			"room":   rx,
			"winner": rx.WinnerID,
		})
	}
}

// @Summary Stateless best-move decision
// @Description Takes a raw game state blob and returns the bot's chosen action
// @Tags Engine
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /best-move [post]
func BestMoveHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			raw = nil
		}
		c.Data(http.StatusOK, "application/json", game.BestMoveJSON(raw, cfg.DefaultWeights))
	}
}

// @Summary Positional analysis
// @Description Shortest-path distances and mobility for both sides
// @Tags Engine
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /analysis [get]
func AnalysisHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"analysis": game.Analyze(rx.State)})
	}
}
