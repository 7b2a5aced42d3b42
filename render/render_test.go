package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/gosweep/game"
)

func newBoard(t *testing.T, width, height uint, mines ...game.Coordinate) *game.Board {
	t.Helper()
	board, err := game.NewBoardFromMines(width, height, mines)
	require.NoError(t, err)
	return board
}

func apply(t *testing.T, board *game.Board, intents ...game.Intent) {
	t.Helper()
	for _, intent := range intents {
		_, err := board.Apply(intent)
		require.NoError(t, err, intent.String())
	}
}

func TestGlyphs(t *testing.T) {
	seen := map[rune]Tile{}
	for _, tile := range Tiles {
		glyph := tile.Glyph()
		require.NotZero(t, glyph, "tile %d", tile)
		if other, ok := seen[glyph]; ok {
			t.Errorf("tiles %d and %d share glyph %q", tile, other, glyph)
		}
		seen[glyph] = tile
	}

	assert.Equal(t, '3', Number3.Glyph())
	assert.Equal(t, '#', Unrevealed.Glyph())
}

func TestTilesWhilePlaying(t *testing.T) {
	board := newBoard(t, 3, 3, game.Coordinate{X: 0, Y: 0}, game.Coordinate{X: 2, Y: 2})
	apply(t, board, game.Reveal(1, 0), game.Flag(0, 0))

	view := board.View()
	tileAt := func(x, y uint) Tile {
		cell, ok := view.At(game.Coordinate{X: x, Y: y})
		require.True(t, ok)
		return TileFor(view, cell)
	}

	assert.Equal(t, Flag, tileAt(0, 0))
	assert.Equal(t, Number1, tileAt(1, 0))
	assert.Equal(t, Unrevealed, tileAt(2, 0))
	assert.Equal(t, Unrevealed, tileAt(2, 2))
}

func TestTilesAfterLoss(t *testing.T) {
	board := newBoard(t, 3, 3, game.Coordinate{X: 0, Y: 0}, game.Coordinate{X: 2, Y: 2})
	apply(t, board, game.Reveal(1, 0), game.Flag(1, 1), game.Reveal(2, 2))
	require.Equal(t, game.Lost, board.State())

	view := board.View()
	tileAt := func(x, y uint) Tile {
		cell, _ := view.At(game.Coordinate{X: x, Y: y})
		return TileFor(view, cell)
	}

	assert.Equal(t, MineUnrevealed, tileAt(0, 0))
	assert.Equal(t, FlagWrong, tileAt(1, 1))
	assert.Equal(t, MineLosing, tileAt(2, 2))
	assert.Equal(t, Number1, tileAt(1, 0))
	assert.Equal(t, Unrevealed, tileAt(2, 0))

	expected := "" +
		"    012\n" +
		"  0 o1#\n" +
		"  1 #X#\n" +
		"  2 ##@\n" +
		"001   LOSE :(\n"
	assert.Equal(t, expected, Text(view))
}

func TestTextAfterWin(t *testing.T) {
	board := newBoard(t, 2, 2, game.Coordinate{X: 1, Y: 1})
	apply(t, board, game.Reveal(0, 0), game.Reveal(1, 0), game.Reveal(0, 1))
	require.Equal(t, game.Won, board.State())

	expected := "" +
		"    01\n" +
		"  0 11\n" +
		"  1 1F\n" +
		"001   WIN!\n"
	assert.Equal(t, expected, Text(board.View()))
}

func TestTextShowsNegativeRemainingMines(t *testing.T) {
	board := newBoard(t, 3, 1, game.Coordinate{X: 0, Y: 0})
	apply(t, board, game.Flag(1, 0), game.Flag(2, 0))

	assert.Equal(t, "    012\n  0 #FF\n-01\n", Text(board.View()))
}
