package game

import "github.com/gammazero/deque"

// flood reveals the connected region of zero-count cells around start, plus
// its numbered border. start must already be revealed. Cells are visited
// breadth-first, neighbours in neighborOffsets order, so the Changed order is
// deterministic. Flagged cells are swept up too.
//
// Every neighbour of a zero-count cell is safe, so flood never hits a mine.
func (board *Board) flood(start Coordinate, result *Result) {
	var queue deque.Deque
	queue.PushBack(start)

	for queue.Len() > 0 {
		c := queue.PopFront().(Coordinate)

		for _, neighbor := range board.neighbors(c) {
			cell := board.cellAt(neighbor)
			if cell.state == Revealed {
				continue
			}

			board.uncover(neighbor, result)

			if cell.content == 0 {
				queue.PushBack(neighbor)
			}
		}
	}
}
