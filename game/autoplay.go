package game

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Autoplay lets director play board, without rendering, until the game ends
func Autoplay(ctx context.Context, board *Board, director Director) error {
	director.Init(board)
	defer director.End()

	moves := 0
	for !board.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, ok := director.Act()
		if !ok {
			return ErrDirectorStuck
		}
		board.Apply(action)
		moves++
	}

	Log.WithFields(logrus.Fields{
		"seed":  board.Seed(),
		"moves": moves,
		"state": board.State(),
	}).Debug("autoplay finished")
	return nil
}
