package main

import (
	"log"

	httpapi "quoridor-bot/internal/api/http"
	"quoridor-bot/internal/api/ws"
	"quoridor-bot/internal/config"
	"quoridor-bot/internal/room"
	"quoridor-bot/internal/store"
)

// @title Quoridor Bot API
// @version 1.0
// @description REST API for an alpha-beta Quoridor bot (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Get()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	r := httpapi.NewRouter(rm, mem, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
