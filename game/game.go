package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const Rules = `
============== Minesweeper ==============
Goal:
  Reveal every cell that does not hide a mine
Rules:
  1. A number counts the mines in the 8 surrounding cells
  2. A blank cell has no surrounding mines
  3. Flag cells you believe hide a mine
Controls:
  Enter: row column action
  Action 1 (or r): reveal a cell
  Action 2 (or f): flag or unflag a cell
  q: quit
Legend:
  ■ hidden cell   ? flag
  number: surrounding mines   blank: no surrounding mines
=========================================
`

var errQuit = errors.New("quit")

type GameConfig struct {
	Rows, Cols int
	NumMines   int
	Bounds     Bounds

	// 0 picks a seed from the clock
	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director

	ShowRules bool
	// Print the final snapshot of every board
	DumpSnapshots bool
	// Offer another game once a game ends
	PlayAgain bool
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:              Easy.Rows,
		Cols:              Easy.Cols,
		NumMines:          Easy.NumMines,
		Bounds:            DefaultBounds,
		Director:          nil,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
		PlayAgain:         true,
	}
}

func (config *GameConfig) SetDifficulty(difficulty Difficulty) {
	config.Rows = difficulty.Rows
	config.Cols = difficulty.Cols
	config.NumMines = difficulty.NumMines
}

func (config GameConfig) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":     config.Rows,
		"cols":     config.Cols,
		"mines":    config.NumMines,
		"seed":     config.Seed,
		"snapshot": config.Snapshot != nil,
		"director": config.Director != nil,
	}
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateBoard(config.LoadSnapshotFresh)
	}

	opts := []Option{WithBounds(config.Bounds)}
	if config.Seed != 0 {
		opts = append(opts, WithSeed(config.Seed))
	}
	return New(config.Rows, config.Cols, config.NumMines, opts...)
}

func (config GameConfig) onGameEnd(board *Board, out io.Writer) error {
	if !config.DumpSnapshots {
		return nil
	}

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s", serialized)
	return err
}

// Run plays games on the text terminal given by in and out until the player
// declines another game, quits, or in is exhausted
func Run(config GameConfig, in io.Reader, out io.Writer) error {
	input := bufio.NewScanner(in)

	if config.ShowRules {
		fmt.Fprint(out, Rules)
	}

	for {
		board, err := config.createBoard()
		if err != nil {
			return err
		}
		Log.WithFields(config.Fields()).Debug("starting game")

		if err := config.play(board, input, out); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}

		if err := config.onGameEnd(board, out); err != nil {
			return err
		}

		if !config.PlayAgain || (config.Snapshot != nil && !config.LoadSnapshotFresh) {
			return nil
		}
		if !confirm(input, out, "\nPlay again? (y/n): ") {
			return nil
		}

		if config.Seed != 0 {
			config.Seed = rand.New(rand.NewSource(config.Seed)).Int63()
		}
	}
}

func (config GameConfig) play(board *Board, input *bufio.Scanner, out io.Writer) error {
	director := config.Director
	if director != nil {
		director.Init(board)
		defer director.End()
	}

	for !board.IsGameOver() {
		fmt.Fprint(out, Render(board, false))
		fmt.Fprintf(out, "\nMines remaining: %d\n", board.MinesRemaining())

		var action CellAction
		if director != nil {
			var ok bool
			if action, ok = director.Act(); !ok {
				return ErrDirectorStuck
			}
			fmt.Fprintf(out, "Director: %s\n", action)
		} else {
			var err error
			if action, err = readAction(input, out, board); err != nil {
				return err
			}
		}

		result := board.Apply(action)
		if result.Toggle == ToggleRejectedAlreadyRevealed {
			fmt.Fprintln(out, "Cannot flag a revealed cell!")
		}
	}

	fmt.Fprint(out, Render(board, true))
	if board.IsWon() {
		fmt.Fprintln(out, "Congratulations, you cleared every mine!")
	} else {
		fmt.Fprintln(out, "Game over! You hit a mine!")
	}
	return nil
}

func readAction(input *bufio.Scanner, out io.Writer, board *Board) (CellAction, error) {
	fmt.Fprint(out, "Enter row column action (1: reveal, 2: flag/unflag): ")

	for {
		if !input.Scan() {
			if err := input.Err(); err != nil {
				return CellAction{}, errors.Wrap(err, "read input")
			}
			return CellAction{}, errQuit
		}

		line := strings.TrimSpace(input.Text())
		if line == "q" || line == "quit" {
			return CellAction{}, errQuit
		}

		action, err := ParseCellAction(line, board.Rows(), board.Cols())
		if err == nil {
			return action, nil
		}

		Log.WithError(err).Debug("rejected input")
		fmt.Fprint(out, "Invalid input! Enter row column action: ")
	}
}

func confirm(input *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if !input.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(input.Text()))
	return answer == "y" || answer == "yes" || answer == "1"
}
