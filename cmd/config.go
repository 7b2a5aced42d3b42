package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// fileConfig mirrors the command-line flags. Pointers tell set values apart
// from missing ones.
type fileConfig struct {
	Width        *uint   `yaml:"width"`
	Height       *uint   `yaml:"height"`
	Mines        *uint   `yaml:"mines"`
	Seed         *int64  `yaml:"seed"`
	Fresh        *bool   `yaml:"fresh"`
	SnapshotsDir *string `yaml:"snapshots_dir"`
	Addr         *string `yaml:"addr"`
}

var seedFromFile bool

func parseConfigFile(data []byte) (*fileConfig, error) {
	var config fileConfig
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadConfigFile applies values from a YAML file to every flag the user did
// not set explicitly.
func loadConfigFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config: %w", err)
	}
	config, err := parseConfigFile(data)
	if err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	config.apply(func(name string) bool {
		return cmd.Flags().Changed(name)
	})
	return nil
}

func (config *fileConfig) apply(changed func(name string) bool) {
	if config.Width != nil && !changed("width") {
		gameConfig.Board.Width = *config.Width
	}
	if config.Height != nil && !changed("height") {
		gameConfig.Board.Height = *config.Height
	}
	if config.Mines != nil && !changed("mines") {
		gameConfig.Board.MineCount = *config.Mines
	}
	if config.Seed != nil && !changed("seed") {
		gameConfig.Seed = *config.Seed
		seedFromFile = true
	}
	if config.Fresh != nil && !changed("fresh") {
		gameConfig.LoadSnapshotFresh = *config.Fresh
	}
	if config.SnapshotsDir != nil && !changed("snapshots-dir") {
		gameConfig.SavedSnapshotsDir = *config.SnapshotsDir
	}
	if config.Addr != nil && !changed("addr") {
		serverConfig.Addr = *config.Addr
	}
}
