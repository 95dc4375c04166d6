package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	row, col int
	numMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'F', 'O':
		cell.setMine()

		switch c {
		case '*':
			if !fresh {
				cell.isLosingMine = true
				cell.isRevealed = true
			}
		case 'F':
			if !fresh {
				cell.setFlagged(true)
			}
		}
	case 'f':
		if !fresh {
			cell.setFlagged(true)
		}
	case '.':
		if !fresh {
			cell.isRevealed = true
			cell.board.remainingCells.Remove(cell)
		}
	case '#':
	default:
		return false
	}

	return true
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// NumMines returns the number of mines around a revealed cell, or -1 while the
// cell is hidden
func (cell *Cell) NumMines() int {
	if !cell.isRevealed || cell.isMine {
		return -1
	}
	return cell.numMines
}

// State is what a player may see of the cell. Mines are only shown once the
// game is over and showMines is set.
func (cell *Cell) State(showMines bool) CellState {
	showMines = showMines && cell.board.IsGameOver()

	switch {
	case cell.isFlagged:
		if showMines && !cell.isMine {
			return FlagWrong
		}
		return Flag
	case cell.isRevealed:
		if cell.isMine {
			return MineLosing
		}
		return CellState(cell.numMines)
	case showMines && cell.isMine:
		return MineUnrevealed
	default:
		return Unrevealed
	}
}

// Neighbors returns the cells of the Moore neighborhood inside the board
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			if neighbor := cell.board.CellAt(cell.row+dRow, cell.col+dCol); neighbor != nil {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

func (cell *Cell) hiddenNeighbors() []*Cell {
	neighbors := cell.Neighbors()
	hidden := neighbors[:0]
	for _, neighbor := range neighbors {
		if !neighbor.isRevealed && !neighbor.isFlagged {
			hidden = append(hidden, neighbor)
		}
	}
	return hidden
}

func (cell *Cell) Click() CellAction {
	return CellAction{
		Row:    cell.row,
		Col:    cell.col,
		Action: Reveal,
	}
}

func (cell *Cell) RightClick() CellAction {
	return CellAction{
		Row:    cell.row,
		Col:    cell.col,
		Action: ToggleFlag,
	}
}

func (cell *Cell) toggleFlagged() {
	cell.setFlagged(!cell.isFlagged)
}

func (cell *Cell) setFlagged(isFlagged bool) {
	if cell.isFlagged == isFlagged {
		return
	}
	cell.isFlagged = isFlagged

	if cell.isFlagged {
		cell.board.numFlags++
	} else {
		cell.board.numFlags--
	}
}

func (cell *Cell) setMine() {
	if cell.isMine {
		return
	}
	cell.isMine = true

	for _, neighbor := range cell.Neighbors() {
		neighbor.numMines++
	}
	cell.board.remainingCells.Remove(cell)
}

func (cell *Cell) reveal() {
	if cell.isFlagged || cell.isRevealed {
		return
	}
	cell.isRevealed = true

	if cell.isMine {
		cell.isLosingMine = true
		cell.board.lose()
	} else {
		cell.board.remainingCells.Remove(cell)
	}
}

func (cell *Cell) cascadeEmpty() int {
	return flood(
		cell,
		func(cell *Cell) {
			cell.reveal()
		},
		func(cell *Cell) []*Cell {
			return cell.hiddenNeighbors()
		},
	)
}
