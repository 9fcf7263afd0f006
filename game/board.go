package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/tverdon/minegrid/util/collections"
)

// Board is the rectangular grid of cells. Dimensions are fixed at
// creation; the mine layout is decided lazily by placeMines, exactly
// once, when the first cell is revealed.
type Board struct {
	rows, cols int
	numMines   int
	cells      [][]Cell

	minesPlaced bool
	rand        *rand.Rand
}

func newBoard(rows, cols, numMines int, rng *rand.Rand) *Board {
	board := &Board{
		rows:     rows,
		cols:     cols,
		numMines: numMines,
		cells:    make([][]Cell, rows),
		rand:     rng,
	}

	idx := 0
	for row := 0; row < rows; row++ {
		board.cells[row] = make([]Cell, cols)

		for col := 0; col < cols; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.row, cell.col = row, col
			cell.idx = idx
			idx++
		}
	}

	return board
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

// CellAt returns the cell at (row, col), or nil when out of bounds.
func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.rows && col < board.cols {
		return &board.cells[row][col]
	}
	return nil
}

// placeMines lays out the mines, keeping the first-revealed cell and its
// neighbors clear. When the board is too full to honor the full 3x3
// exclusion, only the revealed cell itself is kept clear.
func (board *Board) placeMines(firstRow, firstCol int) {
	first := board.CellAt(firstRow, firstCol)

	exclusion := make(collections.Set[int])
	exclusion.Add(first.idx)
	for _, neighbor := range first.appendNeighbors(nil) {
		exclusion.Add(neighbor.idx)
	}

	if board.NumCells()-len(exclusion) < board.numMines {
		for idx := range exclusion {
			if idx != first.idx {
				exclusion.Remove(idx)
			}
		}
		logrus.WithFields(logrus.Fields{
			"rows":  board.rows,
			"cols":  board.cols,
			"mines": board.numMines,
		}).Debug("board too dense for neighbor exclusion; keeping only the first cell clear")
	}

	candidates := make([]int, 0, board.NumCells()-len(exclusion))
	for idx := 0; idx < board.NumCells(); idx++ {
		if !exclusion.Contains(idx) {
			candidates = append(candidates, idx)
		}
	}

	board.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, idx := range candidates[:board.numMines] {
		board.cells[idx/board.cols][idx%board.cols].isMine = true
	}

	board.computeAdjacency()
	board.minesPlaced = true
}

func (board *Board) computeAdjacency() {
	var buf []*Cell

	for row := range board.cells {
		for col := range board.cells[row] {
			cell := &board.cells[row][col]
			if cell.isMine {
				continue
			}

			count := 0
			buf = cell.appendNeighbors(buf[:0])
			for _, neighbor := range buf {
				if neighbor.isMine {
					count++
				}
			}
			cell.adjacent = count
		}
	}
}
