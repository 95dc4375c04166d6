package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoplay(t *testing.T) {
	board, err := (&BoardSnapshot{SerializedBoard: cornerMineLayout}).CreateBoard(true)
	require.NoError(t, err)

	director := &scriptedDirector{actions: []CellAction{
		{Row: 0, Col: 0, Action: ToggleFlag},
		{Row: 4, Col: 4, Action: Reveal},
		{Row: 0, Col: 1, Action: Reveal},
	}}
	require.NoError(t, Autoplay(context.Background(), board, director))

	assert.True(t, board.IsWon())
	assert.True(t, director.ended)
	assert.Len(t, director.actions, 1, "play stops once the game is over")
}

func TestAutoplayDirectorStuck(t *testing.T) {
	board, err := (&BoardSnapshot{SerializedBoard: cornerMineLayout}).CreateBoard(true)
	require.NoError(t, err)

	director := &scriptedDirector{}
	assert.ErrorIs(t, Autoplay(context.Background(), board, director), ErrDirectorStuck)
	assert.True(t, director.ended)
}

func TestAutoplayCancelled(t *testing.T) {
	board, err := (&BoardSnapshot{SerializedBoard: cornerMineLayout}).CreateBoard(true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	director := &scriptedDirector{actions: []CellAction{{Row: 4, Col: 4, Action: Reveal}}}
	assert.ErrorIs(t, Autoplay(ctx, board, director), context.Canceled)
	assert.False(t, board.IsGameOver())
}
