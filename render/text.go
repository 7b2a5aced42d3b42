package render

import (
	"fmt"
	"strings"

	"github.com/they4kman/gosweep/game"
)

// Text draws view as a grid of glyphs with column and row numbers, followed by
// a status line.
func Text(view game.View) string {
	var b strings.Builder

	b.WriteString("    ")
	for x := uint(0); x < view.Config.Width; x++ {
		fmt.Fprintf(&b, "%d", x%10)
	}
	b.WriteString("\n")

	for y := uint(0); y < view.Config.Height; y++ {
		fmt.Fprintf(&b, "%3d ", y)
		for x := uint(0); x < view.Config.Width; x++ {
			cell, _ := view.At(game.Coordinate{X: x, Y: y})
			b.WriteRune(TileFor(view, cell).Glyph())
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%03d", view.RemainingMines)
	switch view.State {
	case game.Won:
		b.WriteString("   WIN!")
	case game.Lost:
		b.WriteString("   LOSE :(")
	}
	b.WriteString("\n")

	return b.String()
}
