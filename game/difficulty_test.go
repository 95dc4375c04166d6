package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDifficultyByName(t *testing.T) {
	for _, difficulty := range Difficulties {
		found, ok := DifficultyByName(difficulty.Name)
		assert.True(t, ok)
		assert.Equal(t, difficulty, found)
		assert.NoError(t, difficulty.Validate(DefaultBounds))
	}

	found, ok := DifficultyByName("HARD")
	assert.True(t, ok)
	assert.Equal(t, Difficulty{Name: "hard", Rows: 24, Cols: 24, NumMines: 99}, found)

	_, ok = DifficultyByName("nightmare")
	assert.False(t, ok)
}

func TestCustomDifficulty(t *testing.T) {
	assert.NoError(t, Custom(5, 24, 119).Validate(DefaultBounds))
	assert.True(t, errors.Is(Custom(5, 24, 120).Validate(DefaultBounds), ErrInvalidMineCount))
	assert.True(t, errors.Is(Custom(25, 5, 3).Validate(DefaultBounds), ErrInvalidDimensions))
	assert.NoError(t, Custom(25, 5, 3).Validate(Unbounded))

	assert.Equal(t, "custom (6x7, 8 mines)", Custom(6, 7, 8).String())
}
