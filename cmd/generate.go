package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/game"
)

var printSnapshot bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a board and print its mine layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := game.NewEngine(gameConfig)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, engine.Dump())

		if printSnapshot {
			serialized, err := engine.Snapshot().Serialize()
			if err != nil {
				return err
			}
			fmt.Fprint(out, serialized)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&printSnapshot, "yaml", false, "Also print the board as a loadable snapshot")
}
