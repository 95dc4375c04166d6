package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a board layout. SerializedBoard holds one line per row and
// one character per cell:
//
//	#  hidden cell
//	.  revealed cell
//	f  flagged cell
//	O  hidden mine
//	F  flagged mine
//	*  detonated mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshal snapshot")
	}

	return string(out), nil
}

// CreateBoard builds a board with its mines already placed. With fresh set,
// reveals and flags from the layout are dropped.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	height := len(rows)
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidLayout, "empty board")
	}
	if height > MaxDimension || width > MaxDimension {
		return nil, errors.Wrapf(ErrInvalidDimensions, "layout is %dx%d, limit is %d", height, width, MaxDimension)
	}

	board := createBoard(height, width, 0)
	board.state = Ongoing
	board.seed = snapshot.Seed

	for y, row := range rows {
		if len([]rune(row)) != width {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %d has %d cells, expected %d", y, len([]rune(row)), width)
		}

		for x, c := range []rune(row) {
			cell := board.CellAt(y, x)
			if !cell.deserialize(c, fresh) {
				return nil, errors.Wrapf(ErrInvalidLayout, "unknown cell %q at (%d, %d)", c, y, x)
			}
			if cell.isMine {
				board.numMines++
			}
			if cell.isLosingMine {
				board.state = Lost
			}
		}
	}

	if err := Unbounded.Validate(height, width, board.numMines); err != nil {
		return nil, err
	}

	if board.state != Lost && board.CheckWin() {
		board.state = Won
	}

	Log.WithFields(logrus.Fields{
		"rows":  height,
		"cols":  width,
		"mines": board.numMines,
		"state": board.state,
		"fresh": fresh,
	}).Debug("loaded board snapshot")

	return board, nil
}

// Snapshot captures the board layout, including hidden mines
func (board *Board) Snapshot() *BoardSnapshot {
	var builder strings.Builder
	for row := range board.cells {
		if row > 0 {
			builder.WriteString("\n")
		}
		for col := range board.cells[row] {
			builder.WriteString(board.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: builder.String(),
	}
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "unmarshal snapshot")
	}
	if strings.TrimSpace(snapshot.SerializedBoard) == "" {
		return nil, errors.Wrap(ErrInvalidLayout, "snapshot has no board")
	}
	return &snapshot, nil
}
