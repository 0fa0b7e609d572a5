package http

import (
	"quoridor-bot/internal/api/ws"
	"quoridor-bot/internal/config"
	"quoridor-bot/internal/room"

	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, store room.Store, hub *ws.Hub, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/play", PlayHandler(rm, hub))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/move-bot", MoveBotHandler(rm))
	r.GET("/analysis", AnalysisHandler(rm))

	// --- ENGINE ENDPOINT ---
	r.POST("/best-move", BestMoveHandler(cfg))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(store, hub)
	r.GET("/config/weights/default", ch.GetDefaultWeightsHandler)
	r.GET("/config/weights/room", ch.GetRoomWeightsHandler)
	r.POST("/config/weights/room", ch.UpdateRoomWeightsHandler)

	return r
}
