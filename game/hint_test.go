package game_test

import (
	"testing"

	"github.com/tverdon/minegrid/game"
)

func TestHintBootstrapsFirstReveal(t *testing.T) {
	session := mustSession(t, game.Config{Rows: 9, Cols: 9, Mines: 10, Seed: 11})

	cell, ok := session.Hint()
	if !ok || cell == nil {
		t.Fatal("hint on a fresh board found nothing")
	}
	if !cell.IsOpen() {
		t.Fatalf("hinted cell %v was not opened", cell)
	}
	if cell.IsMine() {
		t.Fatalf("hinted first reveal %v was a mine", cell)
	}
	if !session.Board().MinesPlaced() {
		t.Fatal("hint did not trigger mine placement")
	}
	if session.Status() == game.Ready || session.Status() == game.Lost {
		t.Fatalf("status %v after hint bootstrap", session.Status())
	}
	if session.HintsUsed() != 1 {
		t.Fatalf("hints used %d, want 1", session.HintsUsed())
	}
}

func TestHintPrefersZeroAdjacencyCells(t *testing.T) {
	// One corner mine: both hint pools are non-empty, so the hint must
	// come from the zero-adjacency pool.
	session := snapshotSession(t, cornerMineBoard)

	cell, ok := session.Hint()
	if !ok {
		t.Fatal("hint found nothing on a nearly empty board")
	}
	if cell.IsMine() {
		t.Fatalf("hint picked a mine at %v", cell)
	}
	if cell.Adjacent() != 0 {
		t.Fatalf("hint picked %v with adjacency %d, want a zero-adjacency cell", cell, cell.Adjacent())
	}
}

func TestHintFallsBackToNumberedCells(t *testing.T) {
	// Three mines around a single safe cell: no zero-adjacency pool.
	session := snapshotSession(t, "OO\nO#")

	cell, ok := session.Hint()
	if !ok {
		t.Fatal("hint found nothing with a safe cell remaining")
	}
	if cell.Row() != 1 || cell.Col() != 1 {
		t.Fatalf("hint picked %v, want the only safe cell (1, 1)", cell)
	}
	if session.Status() != game.Won {
		t.Fatalf("status %v after the hint opened the last safe cell, want %v",
			session.Status(), game.Won)
	}
}

func TestHintPoolExhausted(t *testing.T) {
	session := snapshotSession(t, cornerMineBoard)

	// Flag every safe cell; the hint has nowhere left to go.
	board := session.Board()
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if !board.CellAt(row, col).IsMine() {
				session.ToggleFlag(row, col)
			}
		}
	}

	cell, ok := session.Hint()
	if ok || cell != nil {
		t.Fatalf("hint returned %v from an exhausted pool", cell)
	}
	if session.Status() == game.Won || session.Status() == game.Lost {
		t.Fatalf("exhausted hint pool ended the game: %v", session.Status())
	}
	if session.HintsUsed() != 1 {
		t.Fatalf("hints used %d, want 1 (empty-handed hints still count)", session.HintsUsed())
	}
}

func TestHintsUsedIsMonotonic(t *testing.T) {
	session := mustSession(t, game.Config{Rows: 16, Cols: 16, Mines: 40, Seed: 9})

	for i := 1; i <= 3; i++ {
		if session.Status() == game.Won {
			break
		}
		if _, ok := session.Hint(); !ok {
			t.Fatalf("hint %d found nothing mid-game", i)
		}
		if session.HintsUsed() != i {
			t.Fatalf("hints used %d after %d hints", session.HintsUsed(), i)
		}
	}
}
