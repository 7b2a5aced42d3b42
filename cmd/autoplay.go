package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/render"
)

var (
	maxSteps     int
	directorName string
)

func newDirector(name string, seed int64) (game.Director, error) {
	switch name {
	case "constraint":
		return &constraint.Director{Seed: seed}, nil
	case "random":
		return &random.Director{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("unknown director %q (want constraint or random)", name)
	}
}

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the computer play until the game ends",
	RunE: func(cmd *cobra.Command, args []string) error {
		director, err := newDirector(directorName, gameConfig.Seed)
		if err != nil {
			return err
		}

		engine, err := game.NewEngine(gameConfig)
		if err != nil {
			return err
		}

		outcome, steps, err := game.Direct(engine, director, maxSteps)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, render.Text(engine.View()))
		fmt.Fprintf(out, "%s after %d steps\n", outcome.Kind, steps)
		return nil
	},
}

func init() {
	autoplayCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop after this many intents (0 for no limit)")
	autoplayCmd.Flags().StringVarP(&directorName, "director", "d", "constraint", "Player to use: constraint or random")
}
