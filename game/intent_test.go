package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		input  string
		intent Intent
	}{
		{"o 3 4", Reveal(3, 4)},
		{"reveal 0 0", Reveal(0, 0)},
		{"  F 1 2 ", Flag(1, 2)},
		{"c 7 0", Chord(7, 0)},
	}

	for _, test := range tests {
		intent, err := ParseIntent(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.intent, intent)
	}
}

func TestParseIntentErrors(t *testing.T) {
	for _, input := range []string{"", "o 1", "x 1 2", "o -1 2", "f 1 y", "o 1 2 3"} {
		_, err := ParseIntent(input)
		assert.Error(t, err, input)
	}
}

func TestBoardApply(t *testing.T) {
	board := mustBoard(t, 3, 3, Coordinate{2, 2})

	result, err := board.Apply(Flag(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{2, 2}}, result.Changed)

	result, err = board.Apply(Reveal(0, 0))
	require.NoError(t, err)
	assert.Equal(t, Win, result.Outcome.Kind)

	_, err = board.Apply(Intent{Kind: IntentKind(42)})
	assert.Error(t, err)
}
