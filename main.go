package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quoridor-bot/internal/config"
	"quoridor-bot/internal/game"
)

// Offline match against the bot: you play north (top, racing to row 8),
// the bot plays south. Moves: "m ROW COL" to move the pawn, "w ROW COL h|v"
// to place a wall (wall coordinates 0..7).
func main() {
	cfg := config.Get()
	state := game.NewState()
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println()
		printBoard(state)
		fmt.Printf("walls  you: %d  bot: %d\n", state.WallsRemaining.North, state.WallsRemaining.South)

		if winner, over := game.Winner(state); over {
			if winner == game.North {
				fmt.Println("You win!")
			} else {
				fmt.Println("Bot wins.")
			}
			break
		}

		mv, err := readHumanMove(reader, state)
		if err != nil {
			fmt.Println("Invalid move:", err)
			continue
		}
		next, ok := game.ApplyMove(state, game.North, mv)
		if !ok {
			fmt.Println("Invalid move: illegal wall placement")
			continue
		}
		state = next

		if _, over := game.Winner(state); over {
			continue
		}

		botMove := game.BestMove(state, cfg.DefaultWeights)
		state, ok = game.ApplyMove(state, game.South, botMove)
		if !ok {
			fmt.Println("Bot produced an illegal move, stopping.")
			break
		}
		js, _ := json.Marshal(botMove)
		fmt.Printf("Bot plays: %s\n", js)
	}
}

func readHumanMove(reader *bufio.Reader, state game.State) (game.MoveChoice, error) {
	blocked := game.BlockedEdges(state.Walls)
	moves := game.ValidPawnMoves(state.Positions.North, state.Positions.South, blocked)
	fmt.Printf("Your pawn moves: %v\n", moves)
	fmt.Print("> ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return game.MoveChoice{}, err
	}
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return game.MoveChoice{}, fmt.Errorf("format: 'm ROW COL' or 'w ROW COL h|v'")
	}

	row, err1 := strconv.Atoi(parts[1])
	col, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return game.MoveChoice{}, fmt.Errorf("row/col must be numbers")
	}

	switch parts[0] {
	case "m":
		target := game.Position{Row: row, Col: col}
		for _, m := range moves {
			if m == target {
				return game.PawnMove(target), nil
			}
		}
		return game.MoveChoice{}, fmt.Errorf("pawn cannot reach (%d,%d)", row, col)
	case "w":
		if len(parts) != 4 {
			return game.MoveChoice{}, fmt.Errorf("wall needs an orientation: h or v")
		}
		if state.WallsRemaining.North == 0 {
			return game.MoveChoice{}, fmt.Errorf("no walls remaining")
		}
		orientation := game.Horizontal
		if parts[3] == "v" {
			orientation = game.Vertical
		}
		w := game.Wall{Row: row, Col: col, Orientation: orientation}
		if !game.CanPlaceWall(w, state.Walls, state.Positions) {
			return game.MoveChoice{}, fmt.Errorf("wall at (%d,%d) is not legal", row, col)
		}
		return game.WallMove(w), nil
	}
	return game.MoveChoice{}, fmt.Errorf("unknown command %q", parts[0])
}

func printBoard(state game.State) {
	blocked := game.BlockedEdges(state.Walls)
	for r := 0; r < game.BoardSize; r++ {
		var cells, gaps strings.Builder
		for c := 0; c < game.BoardSize; c++ {
			pos := game.Position{Row: r, Col: c}
			switch pos {
			case state.Positions.North:
				cells.WriteString(" N ")
			case state.Positions.South:
				cells.WriteString(" S ")
			default:
				cells.WriteString(" . ")
			}
			if c < game.BoardSize-1 {
				if blocked.Blocked(pos, game.Position{Row: r, Col: c + 1}) {
					cells.WriteString("|")
				} else {
					cells.WriteString(" ")
				}
			}
			if r < game.BoardSize-1 {
				if blocked.Blocked(pos, game.Position{Row: r + 1, Col: c}) {
					gaps.WriteString("--- ")
				} else {
					gaps.WriteString("    ")
				}
			}
		}
		fmt.Println(cells.String())
		if r < game.BoardSize-1 {
			fmt.Println(gaps.String())
		}
	}
}
