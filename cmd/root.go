package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/server"
)

var gameConfig = game.NewGameConfig()

var (
	configPath   string
	snapshotPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play Minesweeper in the terminal, or serve boards over HTTP",
	Long: `gosweep is a Minesweeper board engine with a few front ends.

Run with no arguments to play in the terminal
	gosweep

Let the computer play, or click at random
	gosweep autoplay
	gosweep autoplay --director random

Print a generated board
	gosweep generate -w 9 -h 9 -m 10 --seed 42

Serve games over HTTP and websockets
	gosweep serve --addr :8080
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log.SetLevel(logrus.DebugLevel)
			server.Log.SetLevel(logrus.DebugLevel)
		}

		if configPath != "" {
			if err := loadConfigFile(cmd, configPath); err != nil {
				return err
			}
		}

		if !cmd.Flags().Changed("seed") && !seedFromFile {
			gameConfig.Seed = time.Now().UnixNano()
		}

		if snapshotPath != "" {
			data, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("unable to read snapshot: %w", err)
			}
			snapshot, err := game.LoadSnapshot(string(data))
			if err != nil {
				return fmt.Errorf("unable to parse snapshot %s: %w", snapshotPath, err)
			}
			gameConfig.Snapshot = snapshot
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	flags.Bool("help", false, "Help for this command")

	flags.UintVarP(&gameConfig.Board.Width, "width", "w", gameConfig.Board.Width, "Width of game board, in cells")
	flags.UintVarP(&gameConfig.Board.Height, "height", "h", gameConfig.Board.Height, "Height of game board, in cells")
	flags.UintVarP(&gameConfig.Board.MineCount, "mines", "m", gameConfig.Board.MineCount, "Number of mines to place in the game board")
	flags.Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for mine placement (defaults to the current time)")
	flags.StringVar(&snapshotPath, "snapshot", "", "Load the first board from a saved snapshot")
	flags.BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", gameConfig.LoadSnapshotFresh, "Hide every cell of a loaded snapshot")
	flags.StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save a snapshot of every finished board to")
	flags.StringVarP(&configPath, "config", "c", "", "YAML file with default values for these flags")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every intent")

	rootCmd.AddCommand(generateCmd, autoplayCmd, serveCmd)
}
