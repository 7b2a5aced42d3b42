package game

import "fmt"

// MaxArea bounds the number of cells on a board.
const MaxArea = 1 << 24

// BoardConfig describes the dimensions and mine density of a board.
type BoardConfig struct {
	Width     uint `json:"width"`
	Height    uint `json:"height"`
	MineCount uint `json:"mine_count"`
}

func (config BoardConfig) Area() uint {
	return config.Width * config.Height
}

func (config BoardConfig) Validate() error {
	if config.Width == 0 || config.Height == 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, config.Width, config.Height)
	}
	if config.Width > MaxArea/config.Height {
		return fmt.Errorf("%w: %dx%d board exceeds %d cells", ErrInvalidConfig, config.Width, config.Height, MaxArea)
	}
	if config.MineCount > config.Area() {
		return fmt.Errorf("%w: %d mines do not fit in %d cells", ErrInvalidConfig, config.MineCount, config.Area())
	}
	return nil
}

func (config BoardConfig) Contains(c Coordinate) bool {
	return c.X < config.Width && c.Y < config.Height
}

func (config BoardConfig) index(c Coordinate) int {
	return int(c.Y*config.Width + c.X)
}

func (config BoardConfig) coordinate(idx int) Coordinate {
	return Coordinate{X: uint(idx) % config.Width, Y: uint(idx) / config.Width}
}

// Neighbors returns the in-bounds neighbours of c in the fixed offset order.
func (config BoardConfig) Neighbors(c Coordinate) []Coordinate {
	return neighbors(c, config.Width, config.Height)
}
