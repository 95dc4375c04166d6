package game

// Director plays a board in place of a human
type Director interface {
	// Init prepares the director for a new board
	Init(*Board)

	// Act returns the next move, or false when the director has no move
	Act() (CellAction, bool)

	// End releases the board
	End()
}
