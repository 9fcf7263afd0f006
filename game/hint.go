package game

// findHintCell picks a safe cell for the player. Zero-adjacency cells
// cascade into the most progress, so that pool is preferred; otherwise
// any closed, unflagged non-mine qualifies. Returns nil when no safe
// cell remains.
func (board *Board) findHintCell() *Cell {
	var zero, other []*Cell

	for row := range board.cells {
		for col := range board.cells[row] {
			cell := &board.cells[row][col]
			if cell.isOpen || cell.isFlagged || cell.isMine {
				continue
			}

			if cell.adjacent == 0 {
				zero = append(zero, cell)
			} else {
				other = append(other, cell)
			}
		}
	}

	pool := zero
	if len(pool) == 0 {
		pool = other
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[board.rand.Intn(len(pool))]
}

// Hint opens a safe cell on the player's behalf and returns it. Before
// the first reveal there is no adjacency data to search, so the hint
// performs a random first reveal instead. Returns false when the game
// is over or no safe cell remains.
//
// Every invocation of a live game counts toward HintsUsed, including
// ones that find nothing.
func (session *Session) Hint() (*Cell, bool) {
	if session.isOver() {
		return nil, false
	}

	session.hintsUsed++

	if !session.board.minesPlaced {
		var pool []*Cell
		for row := range session.board.cells {
			for col := range session.board.cells[row] {
				if cell := &session.board.cells[row][col]; !cell.isFlagged {
					pool = append(pool, cell)
				}
			}
		}
		if len(pool) == 0 {
			return nil, false
		}

		cell := pool[session.board.rand.Intn(len(pool))]
		session.Open(cell.row, cell.col)
		return cell, true
	}

	cell := session.board.findHintCell()
	if cell == nil {
		return nil, false
	}

	session.Open(cell.row, cell.col)
	return cell, true
}
