package game

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/util/collections"
)

var Log = logrus.New()

type Board struct {
	rows, cols int // in number of cells
	numMines   int
	cells      [][]Cell

	state          BoardState
	numFlags       int
	remainingCells collections.Set[*Cell] // mine-free cells not yet revealed

	seed int64
	rand Source
}

// New creates a board with no mines. Mines are placed by the first Reveal,
// never on the revealed cell.
func New(rows, cols, numMines int, opts ...Option) (*Board, error) {
	o := newOptions(opts)
	if err := o.bounds.Validate(rows, cols, numMines); err != nil {
		return nil, err
	}

	board := createBoard(rows, cols, numMines)
	board.seed = o.seed
	board.rand = o.source

	return board, nil
}

func createBoard(rows, cols, numMines int) *Board {
	board := &Board{
		state:          Fresh,
		rows:           rows,
		cols:           cols,
		numMines:       numMines,
		cells:          make([][]Cell, rows),
		remainingCells: make(collections.Set[*Cell], rows*cols),
	}

	for row := 0; row < rows; row++ {
		board.cells[row] = make([]Cell, cols)

		for col := 0; col < cols; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.row, cell.col = row, col

			board.remainingCells.Add(cell)
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

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// MinesRemaining is the mine count minus the number of flags. It goes negative
// when the player places more flags than there are mines.
func (board *Board) MinesRemaining() int {
	return board.numMines - board.numFlags
}

// Seed returns the seed of the default mine source
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) MinesPlaced() bool {
	return board.state != Fresh
}

func (board *Board) IsGameOver() bool {
	return board.state == Lost || board.state == Won
}

func (board *Board) IsWon() bool {
	return board.state == Won
}

// CellAt returns nil for coordinates outside the board
func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.rows && col < board.cols {
		return &board.cells[row][col]
	}
	return nil
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			cells = append(cells, &board.cells[row][col])
		}
	}
	return cells
}

func (board *Board) canPlay() bool {
	return board.state == Fresh || board.state == Ongoing
}

// Reveal uncovers the cell at (row, col). Revealing a blank cell floods
// through the connected blank region and its numbered border.
func (board *Board) Reveal(row, col int) RevealOutcome {
	cell := board.CellAt(row, col)
	if cell == nil || !board.canPlay() || cell.isRevealed || cell.isFlagged {
		return RevealIgnored
	}

	if board.state == Fresh {
		board.placeMines(cell)
	}

	if cell.isMine {
		cell.reveal()
		return RevealDetonated
	}

	if cell.numMines == 0 {
		numVisited := cell.cascadeEmpty()
		Log.WithFields(logrus.Fields{
			"cell":    cell,
			"visited": numVisited,
		}).Debug("cascaded empty cells")
	} else {
		cell.reveal()
	}

	if board.CheckWin() {
		board.win()
		return RevealWon
	}
	return RevealContinue
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells are rejected, and
// nothing changes once the game is over.
func (board *Board) ToggleFlag(row, col int) ToggleOutcome {
	cell := board.CellAt(row, col)
	if cell == nil || !board.canPlay() {
		return ToggleIgnored
	}
	if cell.isRevealed {
		return ToggleRejectedAlreadyRevealed
	}

	cell.toggleFlagged()
	if cell.isFlagged {
		return ToggleFlagged
	}
	return ToggleUnflagged
}

// Apply dispatches a CellAction to Reveal or ToggleFlag
func (board *Board) Apply(action CellAction) ActionResult {
	switch action.Action {
	case Reveal:
		return ActionResult{Action: action, Reveal: board.Reveal(action.Row, action.Col)}
	case ToggleFlag:
		return ActionResult{Action: action, Toggle: board.ToggleFlag(action.Row, action.Col)}
	default:
		return ActionResult{Action: action}
	}
}

// CheckWin reports whether every mine-free cell is revealed. Flags are not
// considered. It does not change the board; Reveal ends the game.
func (board *Board) CheckWin() bool {
	return board.MinesPlaced() && board.remainingCells.Len() == 0
}

func (board *Board) placeMines(safe *Cell) {
	numPlaced := 0
	for numPlaced < board.numMines {
		cell := board.CellAt(board.rand.Intn(board.rows), board.rand.Intn(board.cols))
		if cell.isMine || cell == safe {
			continue
		}

		cell.setMine()
		numPlaced++
	}
	board.state = Ongoing

	Log.WithFields(logrus.Fields{
		"rows":  board.rows,
		"cols":  board.cols,
		"mines": board.numMines,
		"safe":  safe,
	}).Debug("placed mines")
}

func (board *Board) win() {
	board.state = Won
	board.endGame()
}

func (board *Board) lose() {
	board.state = Lost
	board.endGame()
}

func (board *Board) endGame() {
	Log.WithFields(logrus.Fields{
		"state":     board.state,
		"remaining": board.remainingCells.Len(),
		"flags":     board.numFlags,
	}).Debug("game ended")
}
