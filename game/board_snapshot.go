package game

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the YAML-serializable form of a board: the placement
// seed plus one line of cell codes per row.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CreateSession rebuilds a session from the snapshot's mine layout.
// With fresh set, all open/flag state is discarded so the same layout
// can be played again from the start; otherwise the recorded state is
// restored as-is (a board containing an open mine comes back Lost).
func (snapshot *BoardSnapshot) CreateSession(fresh bool) (*Session, error) {
	lines := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty board snapshot")
	}
	rows, cols := len(lines), len(lines[0])

	seed := snapshot.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := newBoard(rows, cols, 0, rand.New(rand.NewSource(seed)))

	numMines := 0
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("ragged snapshot row %d: %d cells, want %d", row, len(line), cols)
		}

		for col := range line {
			cell := board.CellAt(row, col)
			if !cell.deserialize(line[col : col+1]) {
				return nil, fmt.Errorf("unknown cell code %q at (%d, %d)", line[col:col+1], row, col)
			}

			if fresh {
				cell.isOpen = false
				cell.isFlagged = false
				cell.isWrongFlag = false
			}
			if cell.isMine {
				numMines++
			}
		}
	}

	board.numMines = numMines
	board.computeAdjacency()
	board.minesPlaced = true

	config := Config{Rows: rows, Cols: cols, Mines: numMines, Seed: snapshot.Seed}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	session := &Session{
		config: config,
		board:  board,
		status: Ready,
		seed:   seed,
		timer:  newTimer(time.Now),
	}

	if !fresh {
		lost := false
		for row := range board.cells {
			for col := range board.cells[row] {
				cell := &board.cells[row][col]
				if cell.isOpen {
					session.openCount++
					if cell.isMine {
						lost = true
					}
				}
				if cell.isFlagged {
					session.flags++
				}
			}
		}

		if lost {
			session.status = Lost
			session.timer.Stop()
		} else if session.openCount > 0 {
			session.status = Playing
			session.timer.Start()
		}
	}

	return session, nil
}

// Snapshot captures the session's board for saving or replay.
func (session *Session) Snapshot() *BoardSnapshot {
	var builder strings.Builder

	for row := range session.board.cells {
		if row > 0 {
			builder.WriteString("\n")
		}
		for col := range session.board.cells[row] {
			builder.WriteString(session.board.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            session.seed,
		SerializedBoard: builder.String(),
	}
}

// WriteSnapshot saves the board under dir, named by timestamp and
// outcome.
func (session *Session) WriteSnapshot(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}

	path := filepath.Join(dir, session.snapshotFilename(time.Now()))
	return os.WriteFile(path, []byte(session.Snapshot().Serialize()), 0666)
}

func (session *Session) snapshotFilename(t time.Time) string {
	var stateStr string
	switch session.status {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}

	return t.Format("20060102_150405_") + stateStr + ".yaml"
}
