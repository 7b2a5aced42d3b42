package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/render"
)

const playHelp = `commands:
  o X Y   reveal a cell        f X Y   toggle a flag
  c X Y   chord a number       n       new game
  d       dump mine layout     q       quit
`

// play reads intents from in, one per line, and draws the board to out after
// each of them.
func play(in io.Reader, out io.Writer) error {
	engine, err := game.NewEngine(gameConfig)
	if err != nil {
		return err
	}

	fmt.Fprint(out, playHelp)
	fmt.Fprint(out, render.Text(engine.View()))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "n", "new":
			if err := engine.NewGame(gameConfig.Board); err != nil {
				return err
			}
		case "d", "dump":
			fmt.Fprintln(out, engine.Dump())
			continue
		default:
			intent, err := game.ParseIntent(line)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if _, err := engine.Apply(intent); err != nil {
				if errors.Is(err, game.ErrOutOfBounds) {
					fmt.Fprintln(out, err)
					continue
				}
				return err
			}
		}

		view := engine.View()
		fmt.Fprint(out, render.Text(view))
		if view.Finished() {
			fmt.Fprintln(out, "n for a new game, q to quit")
		}
	}

	return scanner.Err()
}
