package game

import (
	"github.com/gammazero/deque"
)

// flood expands a reveal outward from a zero-adjacency start cell. The
// frontier is an explicit FIFO so arbitrarily large boards never hit a
// call-depth limit, and the whole expansion runs in one synchronous pass.
//
// Neighbors that are open, flagged, or mined are skipped; everything
// else is opened, and zero-adjacency cells are pushed for further
// expansion. The isOpen check makes each cell visitable at most once.
func flood(start *Cell, open func(*Cell)) {
	var frontier deque.Deque
	frontier.PushBack(start)

	var buf []*Cell
	for frontier.Len() > 0 {
		cell := frontier.PopFront().(*Cell)

		buf = cell.appendNeighbors(buf[:0])
		for _, neighbor := range buf {
			if neighbor.isOpen || neighbor.isFlagged || neighbor.isMine {
				continue
			}

			open(neighbor)
			if neighbor.adjacent == 0 {
				frontier.PushBack(neighbor)
			}
		}
	}
}
