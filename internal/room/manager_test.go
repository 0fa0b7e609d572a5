package room

import (
	"testing"

	"quoridor-bot/internal/config"
	"quoridor-bot/internal/game"
	"quoridor-bot/internal/store"
)

func newTestManager() *Manager {
	return NewManager(store.NewMemoryStore(), config.Load())
}

func TestCreateRoomSeatsHumanNorth(t *testing.T) {
	m := newTestManager()
	r := m.CreateRoom("alice")
	if len(r.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(r.Players))
	}
	if r.Players[0].Side != game.North || r.Players[0].IsBot {
		t.Fatalf("creator must be the human north player: %+v", r.Players[0])
	}
	if r.State.Positions.North != (game.Position{Row: 0, Col: 4}) {
		t.Fatalf("north pawn misplaced: %+v", r.State.Positions.North)
	}
	if r.State.WallsRemaining.North != game.InitialWalls {
		t.Fatalf("north wall supply wrong: %d", r.State.WallsRemaining.North)
	}
	if _, ok := m.Get(r.Code); !ok {
		t.Fatalf("room not persisted")
	}
}

func TestAddBotOnlyOnce(t *testing.T) {
	m := newTestManager()
	r := m.CreateRoom("alice")
	if err := m.AddBot(r); err != nil {
		t.Fatalf("first bot: %v", err)
	}
	if err := m.AddBot(r); err == nil {
		t.Fatalf("second bot must be rejected")
	}
	if r.Players[1].Side != game.South {
		t.Fatalf("bot must sit south: %+v", r.Players[1])
	}
	if r.Status != "playing" {
		t.Fatalf("room should be playing, got %q", r.Status)
	}
}

func TestApplyMoveEnforcesTurnOrder(t *testing.T) {
	m := newTestManager()
	r := m.CreateRoom("alice")
	if err := m.AddBot(r); err != nil {
		t.Fatalf("add bot: %v", err)
	}

	bot := r.Players[1]
	if err := m.ApplyMove(r, bot.ID, game.PawnMove(game.Position{Row: 7, Col: 4})); err == nil {
		t.Fatalf("bot moved out of turn")
	}

	human := r.Players[0]
	if err := m.ApplyMove(r, human.ID, game.PawnMove(game.Position{Row: 1, Col: 4})); err != nil {
		t.Fatalf("legal human move rejected: %v", err)
	}
	if r.State.Positions.North != (game.Position{Row: 1, Col: 4}) {
		t.Fatalf("pawn not moved: %+v", r.State.Positions.North)
	}
	if r.TurnIdx != 1 {
		t.Fatalf("turn did not advance: %d", r.TurnIdx)
	}
}

func TestApplyMoveRejectsIllegalActions(t *testing.T) {
	m := newTestManager()
	r := m.CreateRoom("alice")
	if err := m.AddBot(r); err != nil {
		t.Fatalf("add bot: %v", err)
	}
	human := r.Players[0]

	if err := m.ApplyMove(r, human.ID, game.PawnMove(game.Position{Row: 4, Col: 4})); err == nil {
		t.Fatalf("teleporting pawn move accepted")
	}
	if err := m.ApplyMove(r, human.ID, game.WallMove(game.Wall{Row: 8, Col: 0})); err == nil {
		t.Fatalf("out-of-grid wall accepted")
	}
	if err := m.ApplyMove(r, human.ID, game.MoveChoice{}); err == nil {
		t.Fatalf("empty move accepted")
	}

	r.State.WallsRemaining.North = 0
	if err := m.ApplyMove(r, human.ID, game.WallMove(game.Wall{Row: 4, Col: 4})); err == nil {
		t.Fatalf("wall placed with empty supply")
	}
}

func TestBotMovePlaysAndAdvancesTurn(t *testing.T) {
	m := newTestManager()
	r := m.CreateRoom("alice")
	if err := m.AddBot(r); err != nil {
		t.Fatalf("add bot: %v", err)
	}
	human, bot := r.Players[0], r.Players[1]

	if err := m.ApplyMove(r, human.ID, game.PawnMove(game.Position{Row: 1, Col: 4})); err != nil {
		t.Fatalf("human move: %v", err)
	}
	mv, err := m.BotMove(r, bot.ID)
	if err != nil {
		t.Fatalf("bot move: %v", err)
	}
	if mv.Pawn == nil && mv.Wall == nil {
		t.Fatalf("bot returned an empty move")
	}
	if r.TurnIdx != 0 {
		t.Fatalf("turn should be back with the human, got %d", r.TurnIdx)
	}
}

func TestWinDetection(t *testing.T) {
	m := newTestManager()
	r := m.CreateRoom("alice")
	if err := m.AddBot(r); err != nil {
		t.Fatalf("add bot: %v", err)
	}
	human := r.Players[0]

	r.State.Positions.North = game.Position{Row: 7, Col: 4}
	r.State.Positions.South = game.Position{Row: 4, Col: 0}
	if err := m.ApplyMove(r, human.ID, game.PawnMove(game.Position{Row: 8, Col: 4})); err != nil {
		t.Fatalf("winning move rejected: %v", err)
	}
	if r.WinnerID == nil || *r.WinnerID != human.ID {
		t.Fatalf("human should have won, winner=%v", r.WinnerID)
	}
	if r.Status != "finished" {
		t.Fatalf("room should be finished, got %q", r.Status)
	}
	if err := m.ApplyMove(r, r.Players[1].ID, game.PawnMove(game.Position{Row: 5, Col: 0})); err == nil {
		t.Fatalf("moves after game over must be rejected")
	}
}
