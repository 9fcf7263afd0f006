package game_test

import (
	"testing"

	"github.com/tverdon/minegrid/game"
)

func TestSnapshotRoundTripOnFinishedBoard(t *testing.T) {
	session := snapshotSession(t, twoMineBoard)
	session.Open(0, 1)
	session.ToggleFlag(3, 0)
	session.Open(0, 0) // lose

	serialized := session.Snapshot().Serialize()
	snapshot, err := game.LoadSnapshot(serialized)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	restored, err := snapshot.CreateSession(false)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if restored.Status() != game.Lost {
		t.Fatalf("restored status %v, want %v", restored.Status(), game.Lost)
	}
	if got := restored.Snapshot().SerializedBoard; got != session.Snapshot().SerializedBoard {
		t.Fatalf("board changed across round trip:\n%s\nwant:\n%s", got, session.Snapshot().SerializedBoard)
	}
}

func TestSnapshotFreshReplayKeepsLayoutOnly(t *testing.T) {
	session := snapshotSession(t, twoMineBoard)
	session.ToggleFlag(1, 1)
	session.Open(0, 0) // lose

	fresh, err := session.Snapshot().CreateSession(true)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if fresh.Status() != game.Ready {
		t.Fatalf("fresh session status %v, want %v", fresh.Status(), game.Ready)
	}
	if fresh.OpenCount() != 0 || fresh.Flags() != 0 {
		t.Fatalf("fresh session carried state: %d open, %d flags", fresh.OpenCount(), fresh.Flags())
	}

	board := fresh.Board()
	if board.NumMines() != 2 {
		t.Fatalf("fresh board has %d mines, want 2", board.NumMines())
	}
	if !board.CellAt(0, 0).IsMine() || !board.CellAt(3, 2).IsMine() {
		t.Fatal("fresh board lost the mine layout")
	}
	if board.CellAt(1, 1).IsFlagged() || board.CellAt(1, 1).IsWrongFlag() {
		t.Fatal("fresh board kept flag state")
	}
}

func TestLoadSnapshotRejectsGarbage(t *testing.T) {
	if _, err := game.LoadSnapshot("{"); err == nil {
		t.Fatal("malformed YAML accepted")
	}

	for _, layout := range []string{"", "O##\n####", "Oz\n##"} {
		snapshot := &game.BoardSnapshot{Seed: 1, SerializedBoard: layout}
		if _, err := snapshot.CreateSession(true); err == nil {
			t.Fatalf("invalid layout %q accepted", layout)
		}
	}
}
