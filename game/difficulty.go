package game

import (
	"fmt"
	"strings"
)

type Difficulty struct {
	Name       string
	Rows, Cols int
	NumMines   int
}

var (
	Easy   = Difficulty{Name: "easy", Rows: 8, Cols: 8, NumMines: 10}
	Medium = Difficulty{Name: "medium", Rows: 16, Cols: 16, NumMines: 40}
	Hard   = Difficulty{Name: "hard", Rows: 24, Cols: 24, NumMines: 99}
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

func DifficultyByName(name string) (Difficulty, bool) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(difficulty.Name, name) {
			return difficulty, true
		}
	}
	return Difficulty{}, false
}

func Custom(rows, cols, numMines int) Difficulty {
	return Difficulty{Name: "custom", Rows: rows, Cols: cols, NumMines: numMines}
}

func (difficulty Difficulty) Validate(bounds Bounds) error {
	return bounds.Validate(difficulty.Rows, difficulty.Cols, difficulty.NumMines)
}

func (difficulty Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", difficulty.Name, difficulty.Rows, difficulty.Cols, difficulty.NumMines)
}
