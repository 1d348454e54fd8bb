package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell

// Visitor is called once for each cell the flood reaches. It returns whether
// the flood should continue into the cell's neighbors.
type Visitor func(*Cell) bool

// flood walks outward from cell using an explicit worklist, so the size of a
// cascade is never bounded by the call stack. Each cell is visited at most
// once.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(map[int]struct{})
	var visitQueue deque.Deque

	enqueue := func(cell *Cell) {
		if _, alreadyVisited := visited[cell.idx]; alreadyVisited {
			return
		}
		visited[cell.idx] = struct{}{}
		visitQueue.PushBack(cell)
	}

	enqueue(cell)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)

		if visit(cell) {
			for _, neighbor := range getNeighbors(cell) {
				enqueue(neighbor)
			}
		}
	}
}

// cascade reveals cell and, while zero-count cells are uncovered, their
// neighbors. Expansion only happens from a cell with no adjacent mines, so
// a mine is never reached.
func (cell *Cell) cascade() []Position {
	revealed := make([]Position, 0, 1)

	flood(
		cell,
		func(cell *Cell) bool {
			if !cell.reveal() {
				return false
			}
			revealed = append(revealed, cell.Position())
			return cell.numMines == 0
		},
		func(cell *Cell) []*Cell {
			return cell.neighbors()
		},
	)

	return revealed
}
