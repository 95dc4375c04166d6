package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Director deduces safe cells and mines from the revealed numbers. When no
// deduction is possible it reveals the cell least likely to be a mine, and
// when nothing is known at all it falls back to a random.Director.
type Director struct {
	// Seed for the random fallback
	Seed int64

	board    *game.Board
	fallback random.Director
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range sortedCells(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(fmt.Sprintf("(%d, %d)", cell.Row(), cell.Col()))
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.Row(), observation.origin.Col())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.fallback = random.Director{Seed: director.Seed}
	director.fallback.Init(board)
}

func (director *Director) Act() (game.CellAction, bool) {
	observations := director.observe()

	actors := []func([]*Observation) (game.CellAction, bool){
		actDeliberate,
		actSubsets,
		actLowestProbability,
	}
	for _, actor := range actors {
		if action, ok := actor(observations); ok {
			return action, true
		}
	}

	return director.fallback.Act()
}

func (director *Director) End() {
	director.fallback.End()
	director.board = nil
}

// observe builds one observation per revealed number that still borders
// hidden cells
func (director *Director) observe() []*Observation {
	var observations []*Observation

	for _, cell := range director.board.Cells() {
		numMines := cell.NumMines()
		if numMines <= 0 {
			continue
		}

		observation := &Observation{
			origin:   cell,
			numMines: numMines,
			cells:    make(collections.Set[*game.Cell]),
		}
		for _, neighbor := range cell.Neighbors() {
			if neighbor.IsRevealed() {
				continue
			}
			if neighbor.IsFlagged() {
				observation.numMines--
			} else {
				observation.cells.Add(neighbor)
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

// actDeliberate flags the cells of an observation that holds only mines, and
// reveals the cells of one that holds none
func actDeliberate(observations []*Observation) (game.CellAction, bool) {
	for _, observation := range observations {
		if observation.numMines == observation.cells.Len() {
			return logAction("deliberate", observation, firstCell(observation.cells).RightClick()), true
		}
		if observation.numMines == 0 {
			return logAction("deliberate", observation, firstCell(observation.cells).Click()), true
		}
	}
	return game.CellAction{}, false
}

// actSubsets splits overlapping observations: when a's cells are a strict
// subset of b's, the remaining cells of b hold the difference in mines
func actSubsets(observations []*Observation) (game.CellAction, bool) {
	for _, a := range observations {
		for _, b := range observations {
			if a == b || !a.cells.Intersects(b.cells) {
				continue
			}
			if !a.cells.IsSubsetOf(b.cells) || a.cells.Equal(b.cells) {
				continue
			}

			split := &Observation{
				numMines: b.numMines - a.numMines,
				cells:    b.cells.Difference(a.cells),
			}
			if split.numMines == 0 {
				return logAction("subset", split, firstCell(split.cells).Click()), true
			}
			if split.numMines == split.cells.Len() {
				return logAction("subset", split, firstCell(split.cells).RightClick()), true
			}
		}
	}
	return game.CellAction{}, false
}

// actLowestProbability reveals the cell whose worst observation gives it the
// lowest chance of hiding a mine
func actLowestProbability(observations []*Observation) (game.CellAction, bool) {
	cellProbabilities := make(map[*game.Cell]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if pastProbability, ok := cellProbabilities[cell]; !ok || probability > pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	var best *game.Cell
	for cell, probability := range cellProbabilities {
		if best == nil || probability < cellProbabilities[best] ||
			(probability == cellProbabilities[best] && before(cell, best)) {
			best = cell
		}
	}
	if best == nil {
		return game.CellAction{}, false
	}

	game.Log.WithFields(logrus.Fields{
		"cell":        best,
		"probability": cellProbabilities[best],
	}).Debug("guessing lowest probability cell")
	return best.Click(), true
}

func logAction(rule string, observation *Observation, action game.CellAction) game.CellAction {
	game.Log.WithFields(logrus.Fields{
		"rule":        rule,
		"observation": observation,
		"action":      action,
	}).Debug("deduced action")
	return action
}

func before(a, b *game.Cell) bool {
	if a.Row() != b.Row() {
		return a.Row() < b.Row()
	}
	return a.Col() < b.Col()
}

func firstCell(cells collections.Set[*game.Cell]) *game.Cell {
	var first *game.Cell
	for cell := range cells {
		if first == nil || before(cell, first) {
			first = cell
		}
	}
	return first
}

func sortedCells(cells collections.Set[*game.Cell]) []*game.Cell {
	sorted := make([]*game.Cell, 0, len(cells))
	for cell := range cells {
		sorted = append(sorted, cell)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return before(sorted[i], sorted[j])
	})
	return sorted
}
