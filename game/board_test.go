package game_test

import (
	"testing"

	"github.com/tverdon/minegrid/game"
)

func mustSession(t *testing.T, config game.Config) *game.Session {
	t.Helper()

	session, err := game.NewSession(config)
	if err != nil {
		t.Fatalf("NewSession(%+v): %v", config, err)
	}
	return session
}

func countMines(board *game.Board) int {
	count := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if board.CellAt(row, col).IsMine() {
				count++
			}
		}
	}
	return count
}

func TestFirstRevealNeighborhoodClear(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		session := mustSession(t, game.Config{Rows: 9, Cols: 9, Mines: 10, Seed: seed})
		if !session.Open(4, 4) {
			t.Fatalf("seed %d: first reveal rejected", seed)
		}

		board := session.Board()
		if !board.MinesPlaced() {
			t.Fatalf("seed %d: mines not placed by first reveal", seed)
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if board.CellAt(4+dr, 4+dc).IsMine() {
					t.Fatalf("seed %d: mine at (%d, %d) inside first-reveal neighborhood",
						seed, 4+dr, 4+dc)
				}
			}
		}
		if got := countMines(board); got != 10 {
			t.Fatalf("seed %d: placed %d mines, want 10", seed, got)
		}
	}
}

func TestPlacementFallbackKeepsFirstCellClear(t *testing.T) {
	// 3x3 with 7 mines: too dense for the full neighborhood exclusion,
	// so only the revealed cell itself is guaranteed clear.
	for seed := int64(1); seed <= 25; seed++ {
		session := mustSession(t, game.Config{Rows: 3, Cols: 3, Mines: 7, Seed: seed})
		session.Open(1, 1)

		board := session.Board()
		if board.CellAt(1, 1).IsMine() {
			t.Fatalf("seed %d: mine under the first reveal", seed)
		}
		if got := countMines(board); got != 7 {
			t.Fatalf("seed %d: placed %d mines, want 7", seed, got)
		}
	}
}

func TestAdjacencyCounts(t *testing.T) {
	session := mustSession(t, game.Config{Rows: 16, Cols: 30, Mines: 99, Seed: 7})
	session.Open(8, 15)

	board := session.Board()
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(row, col)
			if cell.IsMine() {
				continue
			}

			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if neighbor := board.CellAt(row+dr, col+dc); neighbor != nil && neighbor.IsMine() {
						want++
					}
				}
			}
			if cell.Adjacent() != want {
				t.Fatalf("cell (%d, %d): adjacency %d, want %d", row, col, cell.Adjacent(), want)
			}
		}
	}
}

func TestSessionConfigValidation(t *testing.T) {
	invalid := []game.Config{
		{Rows: 0, Cols: 9, Mines: 10},
		{Rows: 9, Cols: 0, Mines: 10},
		{Rows: 9, Cols: 9, Mines: 0},
		{Rows: 9, Cols: 9, Mines: 81},
	}
	for _, config := range invalid {
		if _, err := game.NewSession(config); err == nil {
			t.Fatalf("NewSession(%+v) accepted an invalid config", config)
		}
	}

	if _, err := game.NewSession(game.Config{Rows: 9, Cols: 9, Mines: 80}); err != nil {
		t.Fatalf("maximally mined board rejected: %v", err)
	}
}
