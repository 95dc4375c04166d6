package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood visits cell, then breadth-first every cell reachable through blank
// cells, using getNeighbors to expand each blank cell. Every cell is visited at
// most once. It returns the number of visited cells.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) int {
	visited := collections.NewSet(cell)

	var visitQueue deque.Deque
	visitQueue.PushBack(cell)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		visit(cell)

		if cell.isMine || cell.numMines != 0 {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			// Don't visit, if already visited
			if visited.Contains(neighbor) {
				continue
			}

			visited.Add(neighbor)
			visitQueue.PushBack(neighbor)
		}
	}

	return visited.Len()
}
