package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellAction(t *testing.T) {
	tests := []struct {
		line     string
		expected CellAction
	}{
		{line: "0 0 1", expected: CellAction{Row: 0, Col: 0, Action: Reveal}},
		{line: "  4   7 2 ", expected: CellAction{Row: 4, Col: 7, Action: ToggleFlag}},
		{line: "3 2 r", expected: CellAction{Row: 3, Col: 2, Action: Reveal}},
		{line: "3 2 FLAG", expected: CellAction{Row: 3, Col: 2, Action: ToggleFlag}},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			action, err := ParseCellAction(test.line, 8, 8)
			require.NoError(t, err)
			assert.Equal(t, test.expected, action)
		})
	}
}

func TestParseCellActionRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"1 2",
		"1 2 1 4",
		"a 2 1",
		"1 b 1",
		"8 0 1",
		"0 8 1",
		"-1 0 1",
		"0 0 3",
		"0 0 x",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseCellAction(line, 8, 8)
			assert.True(t, errors.Is(err, ErrInvalidAction), "got %v", err)
		})
	}
}

func TestCellActionString(t *testing.T) {
	assert.Equal(t, "reveal (1, 2)", CellAction{Row: 1, Col: 2, Action: Reveal}.String())
	assert.Equal(t, "flag (0, 3)", CellAction{Row: 0, Col: 3, Action: ToggleFlag}.String())
}
