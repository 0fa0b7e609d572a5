package config

import (
	"os"
	"strconv"
	"sync"
)

// HeuristicWeights are the evaluation weights of the decision engine.
// The defaults are the tuned values the engine ships with; every field can
// be overridden through the environment for experimentation.
type HeuristicWeights struct {
	WDistance      float64 `json:"wDistance"`      // shortest-path differential
	WCenterBonus   float64 `json:"wCenterBonus"`   // bot column centering
	WCenterPenalty float64 `json:"wCenterPenalty"` // opponent column centering
	WAdvance       float64 `json:"wAdvance"`       // bot row-advancement shaping
	WRetreat       float64 `json:"wRetreat"`       // opponent row-advancement shaping
	WMobility      float64 `json:"wMobility"`      // pawn-move count differential
	WAggression    float64 `json:"wAggression"`    // close-quarters bonus when ahead
	WWallDiff      float64 `json:"wWallDiff"`      // remaining-wall differential
	WWin           float64 `json:"wWin"`           // terminal win/loss override
}

type Config struct {
	HTTPAddr       string
	DefaultWeights HeuristicWeights
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		HTTPAddr: getenvStr("HTTP_ADDR", ":8080"),
		DefaultWeights: HeuristicWeights{
			WDistance:      getenvFloat("W_DISTANCE", 20),
			WCenterBonus:   getenvFloat("W_CENTER_BONUS", 3),
			WCenterPenalty: getenvFloat("W_CENTER_PENALTY", 1.5),
			WAdvance:       getenvFloat("W_ADVANCE", 3.5),
			WRetreat:       getenvFloat("W_RETREAT", 3),
			WMobility:      getenvFloat("W_MOBILITY", 2),
			WAggression:    getenvFloat("W_AGGRESSION", 6),
			WWallDiff:      getenvFloat("W_WALL_DIFF", 1.5),
			WWin:           getenvFloat("W_WIN", 10000),
		},
	}
}

var (
	globalOnce sync.Once
	global     *Config
)

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	globalOnce.Do(func() {
		global = Load()
	})
	return global
}

// RoomConfig carries per-room weight overrides. Rooms start on the global
// defaults; a room becomes customized once weights are set explicitly.
type RoomConfig struct {
	RoomCode string `json:"roomCode"`

	mu         sync.RWMutex
	weights    HeuristicWeights
	customized bool
}

func NewRoomConfig(code string) *RoomConfig {
	return &RoomConfig{
		RoomCode: code,
		weights:  Get().DefaultWeights,
	}
}

func (rc *RoomConfig) GetWeights() HeuristicWeights {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.weights
}

func (rc *RoomConfig) SetWeights(w HeuristicWeights) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.weights = w
	rc.customized = true
}

func (rc *RoomConfig) IsCustomized() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.customized
}
