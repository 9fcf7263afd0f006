package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type Status int

const (
	Ready Status = iota
	Playing
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Won:
		return "You win!"
	case Lost:
		return "Game over"
	}
	return fmt.Sprintf("Status(%d)", int(status))
}

// Session is a single game from first reveal to win or loss. It is the
// sole mutator of its board; a "new game" is a fresh Session, never a
// reset of this one.
type Session struct {
	config Config
	board  *Board
	status Status

	seed int64

	flags     int
	openCount int
	hintsUsed int

	timer *Timer

	onCellChange func(*Cell)
}

func NewSession(config Config) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Session{
		config: config,
		board:  newBoard(config.Rows, config.Cols, config.Mines, rand.New(rand.NewSource(seed))),
		status: Ready,
		seed:   seed,
		timer:  newTimer(time.Now),
	}, nil
}

func (session *Session) Config() Config {
	return session.config
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Status() Status {
	return session.status
}

func (session *Session) Flags() int {
	return session.flags
}

func (session *Session) OpenCount() int {
	return session.openCount
}

func (session *Session) HintsUsed() int {
	return session.hintsUsed
}

// MinesRemaining is the display counter mines - flags. Flags are free
// player bookkeeping, so this can go negative.
func (session *Session) MinesRemaining() int {
	return session.config.Mines - session.flags
}

// Elapsed is the clock value in whole seconds, clamped to 0..999.
func (session *Session) Elapsed() int {
	return session.timer.Elapsed()
}

// Timer exposes the session clock so adapters can hook its tick.
func (session *Session) Timer() *Timer {
	return session.timer
}

// ResetTimer zeroes the clock without touching board state.
func (session *Session) ResetTimer() {
	session.timer.Reset()
}

// OnCellChange registers a callback invoked for every cell the engine
// mutates, so an adapter can redraw cells individually.
func (session *Session) OnCellChange(fn func(*Cell)) {
	session.onCellChange = fn
}

func (session *Session) notify(cell *Cell) {
	if session.onCellChange != nil {
		session.onCellChange(cell)
	}
}

func (session *Session) isOver() bool {
	return session.status == Won || session.status == Lost
}

// Open reveals the cell at (row, col) and reports whether a regular
// open happened. Reveals of open or flagged cells, reveals after game
// end, and out-of-range coordinates are no-ops. Opening a mine ends the
// game and does not count as a regular open.
//
// The first successful reveal of a session places the mines (the
// clicked neighborhood stays clear) and starts the clock.
func (session *Session) Open(row, col int) bool {
	if session.isOver() {
		return false
	}

	cell := session.board.CellAt(row, col)
	if cell == nil || cell.isOpen || cell.isFlagged {
		return false
	}

	// The placement gate is checked on every reveal, not just the
	// first: boards restored from snapshots arrive pre-filled.
	if !session.board.minesPlaced {
		session.board.placeMines(row, col)
	}
	if session.status == Ready {
		session.status = Playing
		session.timer.Start()
		logrus.WithFields(logrus.Fields{
			"board": session.config.Key(),
			"seed":  session.seed,
		}).Info("game started")
	}

	session.openCell(cell)

	if cell.isMine {
		session.lose(cell)
		return false
	}

	if cell.adjacent == 0 {
		flood(cell, session.openCell)
	}

	if session.openCount >= session.board.NumCells()-session.config.Mines {
		session.win()
	}

	return true
}

func (session *Session) openCell(cell *Cell) {
	cell.isOpen = true
	session.openCount++
	session.notify(cell)
}

// ToggleFlag flips the flag on a closed cell and reports whether
// anything changed. Open cells and finished games are no-ops.
func (session *Session) ToggleFlag(row, col int) bool {
	if session.isOver() {
		return false
	}

	cell := session.board.CellAt(row, col)
	if cell == nil || cell.isOpen {
		return false
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		session.flags++
	} else {
		session.flags--
	}
	session.notify(cell)

	return true
}

func (session *Session) win() {
	session.status = Won
	session.timer.Stop()

	logrus.WithFields(logrus.Fields{
		"board":   session.config.Key(),
		"elapsed": session.timer.Elapsed(),
		"hints":   session.hintsUsed,
	}).Info("board cleared")
}

func (session *Session) lose(mine *Cell) {
	session.status = Lost
	session.timer.Stop()
	session.revealMines()

	logrus.WithFields(logrus.Fields{
		"board": session.config.Key(),
		"mine":  mine.String(),
	}).Info("mine opened")
}

// revealMines exposes the board after a loss: every mine is opened, and
// every flagged non-mine is opened and marked as a wrong flag. All other
// cells are left as they were. These forced opens are not counted.
func (session *Session) revealMines() {
	for row := range session.board.cells {
		for col := range session.board.cells[row] {
			cell := &session.board.cells[row][col]

			switch {
			case cell.isMine:
				if !cell.isOpen {
					cell.isOpen = true
					session.notify(cell)
				}
			case cell.isFlagged:
				cell.isOpen = true
				cell.isWrongFlag = true
				session.notify(cell)
			}
		}
	}
}
