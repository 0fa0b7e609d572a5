package http

import (
	"net/http"

	"quoridor-bot/internal/api/ws"
	"quoridor-bot/internal/config"
	"quoridor-bot/internal/room"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	store room.Store
	hub   *ws.Hub
}

func NewConfigHandler(s room.Store, hub *ws.Hub) *ConfigHandler {
	return &ConfigHandler{
		store: s,
		hub:   hub,
	}
}

// GetDefaultWeightsHandler returns the global default weights
// @Summary Get default heuristic weights
// @Description Returns the evaluation weights the engine ships with
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/default [get]
func (h *ConfigHandler) GetDefaultWeightsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weights": config.Get().DefaultWeights,
	})
}

// GetRoomWeightsHandler returns the weights for a specific room
// @Summary Get room heuristic weights
// @Description Returns the evaluation weights configured for a specific room
// @Tags Config
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [get]
func (h *ConfigHandler) GetRoomWeightsHandler(c *gin.Context) {
	roomCode := c.Query("roomCode")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode is required"})
		return
	}

	rx, ok := h.store.GetRoom(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	var weights config.HeuristicWeights
	var isCustomized bool
	if rx.RoomConfig != nil {
		weights = rx.RoomConfig.GetWeights()
		isCustomized = rx.RoomConfig.IsCustomized()
	} else {
		weights = config.Get().DefaultWeights
	}

	c.JSON(http.StatusOK, gin.H{
		"room_code":     roomCode,
		"weights":       weights,
		"is_customized": isCustomized,
	})
}

type UpdateRoomWeightsRequest struct {
	RoomCode string                  `json:"room_code" binding:"required"`
	Weights  config.HeuristicWeights `json:"weights" binding:"required"`
}

// UpdateRoomWeightsHandler overrides a room's evaluation weights
// @Summary Update room heuristic weights
// @Description Overrides the evaluation weights for one room
// @Tags Config
// @Accept json
// @Produce json
// @Param request body UpdateRoomWeightsRequest true "Weights"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [post]
func (h *ConfigHandler) UpdateRoomWeightsHandler(c *gin.Context) {
	var req UpdateRoomWeightsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rx, ok := h.store.GetRoom(req.RoomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if rx.RoomConfig == nil {
		rx.RoomConfig = config.NewRoomConfig(req.RoomCode)
	}
	rx.RoomConfig.SetWeights(req.Weights)
	h.store.SaveRoom(rx)

	h.hub.Broadcast(req.RoomCode, "weights-updated", gin.H{"weights": req.Weights})
	c.JSON(http.StatusOK, gin.H{
		"room_code": req.RoomCode,
		"weights":   req.Weights,
	})
}
