package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Action int

const (
	Reveal Action = iota + 1
	ToggleFlag
)

var actionNames = map[string]Action{
	"1":      Reveal,
	"r":      Reveal,
	"reveal": Reveal,
	"2":      ToggleFlag,
	"f":      ToggleFlag,
	"flag":   ToggleFlag,
}

func (action Action) String() string {
	switch action {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "flag"
	default:
		return fmt.Sprintf("Action(%d)", int(action))
	}
}

type CellAction struct {
	Row, Col int
	Action   Action
}

func (action CellAction) String() string {
	return fmt.Sprintf("%s (%d, %d)", action.Action, action.Row, action.Col)
}

// ActionResult holds the outcome of whichever operation the action mapped to
type ActionResult struct {
	Action CellAction
	Reveal RevealOutcome
	Toggle ToggleOutcome
}

// ParseCellAction parses a "row col action" line. action is 1, r or reveal to
// reveal and 2, f or flag to toggle a flag. Coordinates must fall inside a
// rows x cols board.
func ParseCellAction(line string, rows, cols int) (CellAction, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return CellAction{}, errors.Wrapf(ErrInvalidAction, "expected 3 fields, got %d", len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return CellAction{}, errors.Wrapf(ErrInvalidAction, "row %q is not a number", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return CellAction{}, errors.Wrapf(ErrInvalidAction, "column %q is not a number", fields[1])
	}

	if row < 0 || row >= rows {
		return CellAction{}, errors.Wrapf(ErrInvalidAction, "row must be within [0, %d), got %d", rows, row)
	}
	if col < 0 || col >= cols {
		return CellAction{}, errors.Wrapf(ErrInvalidAction, "column must be within [0, %d), got %d", cols, col)
	}

	action, ok := actionNames[strings.ToLower(fields[2])]
	if !ok {
		return CellAction{}, errors.Wrapf(ErrInvalidAction, "unknown action %q", fields[2])
	}

	return CellAction{Row: row, Col: col, Action: action}, nil
}
