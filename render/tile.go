package render

import "github.com/they4kman/gosweep/game"

// Tile is the picture a cell should be drawn with.
type Tile int

const (
	Unrevealed Tile = iota - 1
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
	Mine
	MineUnrevealed
	MineLosing
)

var Tiles = []Tile{
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
	Mine,
	MineUnrevealed,
	MineLosing,
}

var glyphs = map[Tile]rune{
	Unrevealed:     '#',
	Empty:          '.',
	Flag:           'F',
	FlagWrong:      'X',
	Mine:           '*',
	MineUnrevealed: 'o',
	MineLosing:     '@',
}

func (tile Tile) Glyph() rune {
	if tile >= Number1 && tile <= Number8 {
		return rune('0' + int(tile))
	}
	return glyphs[tile]
}

// TileFor classifies a cell of view. After a loss, mines the player never
// found and flags placed on safe cells get their own tiles; after a win, the
// remaining mines are shown flagged.
func TileFor(view game.View, cell game.CellView) Tile {
	switch view.State {
	case game.Lost:
		switch {
		case cell.At == view.Outcome.Detonated:
			return MineLosing
		case cell.State == game.Flagged && !cell.Content.IsMine():
			return FlagWrong
		case cell.State == game.Hidden && cell.Content.IsMine():
			return MineUnrevealed
		}
	case game.Won:
		if cell.State != game.Revealed && cell.Content.IsMine() {
			return Flag
		}
	}

	switch cell.State {
	case game.Flagged:
		return Flag
	case game.Revealed:
		if cell.Content.IsMine() {
			return Mine
		}
		return Tile(cell.Content.Count())
	default:
		return Unrevealed
	}
}
