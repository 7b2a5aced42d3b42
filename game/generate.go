package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Randomizer is the source of randomness for mine placement. *rand.Rand
// satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Generate builds a fresh board with config.MineCount mines placed uniformly
// at random.
func Generate(config BoardConfig, rnd Randomizer) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := newBoard(config, placeMines(config, rnd))

	Log.WithFields(logrus.Fields{
		"width":  config.Width,
		"height": config.Height,
		"mines":  config.MineCount,
	}).Debug("generated board")

	return board, nil
}

// NewBoardFromMines builds a board with mines at exactly the given
// coordinates.
func NewBoardFromMines(width, height uint, mines []Coordinate) (*Board, error) {
	config := BoardConfig{Width: width, Height: height, MineCount: uint(len(mines))}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	layout := make([]bool, config.Area())
	for _, c := range mines {
		if !config.Contains(c) {
			return nil, fmt.Errorf("mine at %v: %w", c, ErrOutOfBounds)
		}
		idx := config.index(c)
		if layout[idx] {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidConfig, c)
		}
		layout[idx] = true
	}

	return newBoard(config, layout), nil
}

// placeMines returns a row-major layout with exactly config.MineCount true
// slots.
//
// Only the minority role is shuffled. The majority role fills the head of the
// slice and the minority the tail; a forward Fisher-Yates pass is then run
// over the tail alone. Iterations over the head would only swap identical
// values, so skipping them leaves every arrangement equally likely.
func placeMines(config BoardConfig, rnd Randomizer) []bool {
	area := int(config.Area())
	mineCount := int(config.MineCount)

	minority := true
	start := area - mineCount
	if mineCount >= area/2 {
		minority = false
		start = mineCount
	}

	layout := make([]bool, area)
	for i := range layout {
		if i < start {
			layout[i] = !minority
		} else {
			layout[i] = minority
		}
	}

	for i := start; i < area; i++ {
		j := rnd.Intn(i + 1)
		layout[i], layout[j] = layout[j], layout[i]
	}

	return layout
}

// countContents derives the content grid from a mine layout.
func countContents(config BoardConfig, layout []bool) []Content {
	contents := make([]Content, len(layout))
	for idx, isMine := range layout {
		if isMine {
			contents[idx] = Mine
			continue
		}

		n := 0
		for _, neighbor := range neighbors(config.coordinate(idx), config.Width, config.Height) {
			if layout[config.index(neighbor)] {
				n++
			}
		}
		contents[idx] = SafeCount(n)
	}
	return contents
}
