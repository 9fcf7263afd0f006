package game

import (
	"fmt"
)

// Cell is a single square of the board. All mutation goes through the
// owning Session; the accessors exist so adapters can redraw a cell.
type Cell struct {
	board *Board

	row, col int
	idx      int

	isMine, isOpen, isFlagged bool
	isWrongFlag               bool
	adjacent                  int
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsOpen() bool {
	return cell.isOpen
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// IsWrongFlag reports whether the end-of-game reveal exposed this cell
// as a flagged non-mine. It is never set while a game is in progress.
func (cell *Cell) IsWrongFlag() bool {
	return cell.isWrongFlag
}

// Adjacent is the number of mined neighbors. Meaningful only for
// non-mine cells after mine placement.
func (cell *Cell) Adjacent() int {
	return cell.adjacent
}

// appendNeighbors appends the up-to-8 in-bounds neighbors of cell to buf
// and returns the extended slice.
func (cell *Cell) appendNeighbors(buf []*Cell) []*Cell {
	board := cell.board

	isAtTopBorder := cell.row < 1
	isAtBottomBorder := cell.row >= board.rows-1

	if cell.col >= 1 {
		buf = append(buf, board.CellAt(cell.row, cell.col-1))

		if !isAtTopBorder {
			buf = append(buf, board.CellAt(cell.row-1, cell.col-1))
		}
		if !isAtBottomBorder {
			buf = append(buf, board.CellAt(cell.row+1, cell.col-1))
		}
	}

	if cell.col < board.cols-1 {
		buf = append(buf, board.CellAt(cell.row, cell.col+1))

		if !isAtTopBorder {
			buf = append(buf, board.CellAt(cell.row-1, cell.col+1))
		}
		if !isAtBottomBorder {
			buf = append(buf, board.CellAt(cell.row+1, cell.col+1))
		}
	}

	if !isAtTopBorder {
		buf = append(buf, board.CellAt(cell.row-1, cell.col))
	}
	if !isAtBottomBorder {
		buf = append(buf, board.CellAt(cell.row+1, cell.col))
	}

	return buf
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isOpen:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isWrongFlag:
		return "X"
	case cell.isFlagged:
		return "f"
	case cell.isOpen:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c string) bool {
	switch c {
	case "*":
		cell.isMine = true
		cell.isOpen = true
	case "F":
		cell.isMine = true
		cell.isFlagged = true
	case "O":
		cell.isMine = true
	case "X":
		cell.isOpen = true
		cell.isWrongFlag = true
	case "f":
		cell.isFlagged = true
	case ".":
		cell.isOpen = true
	case "#":
	default:
		return false
	}

	return true
}
