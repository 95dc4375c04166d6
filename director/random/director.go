package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/termsweep/game"
)

// Director reveals hidden, unflagged cells in a random order
type Director struct {
	// Seed for the reveal order; 0 picks one from the clock
	Seed int64

	board *game.Board
	cells []*game.Cell
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.cells = board.Cells()

	seed := director.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rand.New(rand.NewSource(seed)).Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) Act() (game.CellAction, bool) {
	for _, cell := range director.cells {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			return cell.Click(), true
		}
	}
	return game.CellAction{}, false
}

func (director *Director) End() {
	director.board = nil
	director.cells = nil
}
