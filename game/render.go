package game

import (
	"fmt"
	"strings"
)

// Render draws the board as text with row and column headers. Mines are drawn
// only when showMines is set and the game is over.
func Render(board *Board, showMines bool) string {
	var builder strings.Builder

	builder.WriteString("\n   ")
	for col := 0; col < board.cols; col++ {
		fmt.Fprintf(&builder, "%2d", col)
	}
	builder.WriteString("\n")

	for row := range board.cells {
		fmt.Fprintf(&builder, "%2d ", row)
		for col := range board.cells[row] {
			fmt.Fprintf(&builder, " %s", board.cells[row][col].State(showMines).Glyph())
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
