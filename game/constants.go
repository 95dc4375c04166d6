package game

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	MineUnrevealed,
	MineLosing,
}

var cellGlyphs = map[CellState]string{
	Unrevealed:     "■",
	Empty:          " ",
	Number1:        "1",
	Number2:        "2",
	Number3:        "3",
	Number4:        "4",
	Number5:        "5",
	Number6:        "6",
	Number7:        "7",
	Number8:        "8",
	Flag:           "?",
	FlagWrong:      "!",
	MineUnrevealed: "×",
	MineLosing:     "*",
}

// Glyph is the single character used to draw the state in a text grid
func (state CellState) Glyph() string {
	if glyph, ok := cellGlyphs[state]; ok {
		return glyph
	}
	return "■"
}

const (
	// Fresh boards have no mines yet; they are placed by the first reveal
	Fresh BoardState = iota
	Ongoing
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case Fresh:
		return "fresh"
	case Ongoing:
		return "ongoing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const (
	MinRows = 5
	MaxRows = 24
	MinCols = 5
	MaxCols = 24

	MinMines = 1

	// MaxDimension caps either side of any board, including layouts
	MaxDimension = 1024
)

type RevealOutcome int

const (
	// RevealIgnored means nothing changed: out of bounds, already revealed,
	// flagged, or the game is over
	RevealIgnored RevealOutcome = iota
	RevealContinue
	RevealDetonated
	RevealWon
)

func (outcome RevealOutcome) String() string {
	switch outcome {
	case RevealIgnored:
		return "ignored"
	case RevealContinue:
		return "continue"
	case RevealDetonated:
		return "detonated"
	case RevealWon:
		return "won"
	default:
		return "unknown"
	}
}

type ToggleOutcome int

const (
	// ToggleIgnored is returned for out of bounds coordinates and finished games
	ToggleIgnored ToggleOutcome = iota
	ToggleRejectedAlreadyRevealed
	ToggleFlagged
	ToggleUnflagged
)

// Applied reports whether the toggle changed the flag
func (outcome ToggleOutcome) Applied() bool {
	return outcome == ToggleFlagged || outcome == ToggleUnflagged
}

// Flagged reports the new flag state of an applied toggle
func (outcome ToggleOutcome) Flagged() bool {
	return outcome == ToggleFlagged
}

func (outcome ToggleOutcome) String() string {
	switch outcome {
	case ToggleIgnored:
		return "ignored"
	case ToggleRejectedAlreadyRevealed:
		return "rejected: already revealed"
	case ToggleFlagged:
		return "flagged"
	case ToggleUnflagged:
		return "unflagged"
	default:
		return "unknown"
	}
}
