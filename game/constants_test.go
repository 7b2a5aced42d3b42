package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "flagged", Flagged.String())
	assert.Equal(t, "ongoing", Ongoing.String())
	assert.Equal(t, "loss", Loss.String())
	assert.Equal(t, "chord", ChordIntent.String())
	assert.Equal(t, "unknown(7)", CellState(7).String())
	assert.Equal(t, "unknown(-1)", OutcomeKind(-1).String())

	var state BoardState
	require.NoError(t, state.UnmarshalText([]byte("won")))
	assert.Equal(t, Won, state)
	assert.Error(t, state.UnmarshalText([]byte("draw")))
}

func TestResultJSON(t *testing.T) {
	out, err := json.Marshal(Result{
		Outcome: Outcome{Kind: Loss, Detonated: Coordinate{2, 1}},
		Changed: []Coordinate{{2, 1}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome":{"kind":"loss","detonated":{"x":2,"y":1}},"changed":[{"x":2,"y":1}]}`, string(out))
}
