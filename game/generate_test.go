package game

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// scriptedRand returns the queued values in order.
type scriptedRand []int

func (s *scriptedRand) Intn(n int) int {
	v := (*s)[0]
	*s = (*s)[1:]
	return v % n
}

// odometer enumerates every possible sequence of Intn results, one sequence
// per pass.
type odometer struct {
	digits []int
	limits []int
	pos    int
}

func (o *odometer) Intn(n int) int {
	if o.pos == len(o.digits) {
		o.digits = append(o.digits, 0)
		o.limits = append(o.limits, n)
	}
	v := o.digits[o.pos]
	o.pos++
	return v
}

func (o *odometer) next() bool {
	o.pos = 0
	for i := len(o.digits) - 1; i >= 0; i-- {
		o.digits[i]++
		if o.digits[i] < o.limits[i] {
			return true
		}
		o.digits[i] = 0
	}
	return false
}

func countMines(board *Board) uint {
	n := uint(0)
	for _, cell := range board.cells {
		if cell.content.IsMine() {
			n++
		}
	}
	return n
}

func TestGenerate(t *testing.T) {
	tests := []BoardConfig{
		{Width: 1, Height: 1, MineCount: 0},
		{Width: 1, Height: 1, MineCount: 1},
		{Width: 9, Height: 9, MineCount: 10},
		{Width: 9, Height: 9, MineCount: 40},
		{Width: 9, Height: 9, MineCount: 41},
		{Width: 16, Height: 16, MineCount: 40},
		{Width: 30, Height: 16, MineCount: 99},
		{Width: 30, Height: 16, MineCount: 480},
		{Width: 7, Height: 3, MineCount: 0},
	}

	for _, config := range tests {
		t.Run(fmt.Sprintf("%dx%d(%d)", config.Width, config.Height, config.MineCount), func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				board, err := Generate(config, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)

				assert.Equal(t, config.MineCount, countMines(board))

				for idx, cell := range board.cells {
					assert.Equal(t, Hidden, cell.state)
					if cell.content.IsMine() {
						continue
					}

					n := 0
					for _, neighbor := range board.neighbors(config.coordinate(idx)) {
						if board.cellAt(neighbor).content.IsMine() {
							n++
						}
					}
					assert.Equal(t, n, cell.content.Count(), "count at %v", config.coordinate(idx))
				}
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	config := BoardConfig{Width: 16, Height: 16, MineCount: 40}

	a, err := Generate(config, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(config, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.Dump(), b.Dump())
}

func TestGenerateInvalidConfig(t *testing.T) {
	tests := []BoardConfig{
		{Width: 0, Height: 5, MineCount: 0},
		{Width: 5, Height: 0, MineCount: 0},
		{Width: 3, Height: 3, MineCount: 10},
		{Width: math.MaxUint/2 + 1, Height: 2, MineCount: 0},
		{Width: math.MaxUint, Height: math.MaxUint, MineCount: 5},
		{Width: MaxArea, Height: 2, MineCount: 0},
		{Width: 1, Height: MaxArea + 1, MineCount: 0},
	}

	for _, config := range tests {
		_, err := Generate(config, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidConfig, "%dx%d", config.Width, config.Height)
	}

	assert.NoError(t, BoardConfig{Width: MaxArea, Height: 1}.Validate())
	assert.NoError(t, BoardConfig{Width: 1 << 12, Height: 1 << 12, MineCount: 1}.Validate())
}

func TestPlaceMinesIsUniform(t *testing.T) {
	binomial := func(n, k int) int {
		r := 1
		for i := 1; i <= k; i++ {
			r = r * (n - k + i) / i
		}
		return r
	}

	for _, size := range [][2]uint{{5, 1}, {3, 2}, {2, 3}} {
		for mines := uint(0); mines <= size[0]*size[1]; mines++ {
			config := BoardConfig{Width: size[0], Height: size[1], MineCount: mines}
			t.Run(fmt.Sprintf("%dx%d(%d)", config.Width, config.Height, mines), func(t *testing.T) {
				counts := make(map[string]int)
				rnd := &odometer{}
				for {
					layout := placeMines(config, rnd)

					var key strings.Builder
					placed := uint(0)
					for _, isMine := range layout {
						if isMine {
							key.WriteByte('*')
							placed++
						} else {
							key.WriteByte('.')
						}
					}
					require.Equal(t, mines, placed)
					counts[key.String()]++

					if !rnd.next() {
						break
					}
				}

				require.Len(t, counts, binomial(int(config.Area()), int(mines)))

				var want int
				for _, n := range counts {
					want = n
					break
				}
				for layout, n := range counts {
					assert.Equal(t, want, n, "layout %s", layout)
				}
			})
		}
	}
}

func TestPlaceMinesSampled(t *testing.T) {
	const trials = 9000
	config := BoardConfig{Width: 3, Height: 3, MineCount: 1}
	rnd := rand.New(rand.NewSource(7))

	hits := make([]int, config.Area())
	for i := 0; i < trials; i++ {
		for idx, isMine := range placeMines(config, rnd) {
			if isMine {
				hits[idx]++
			}
		}
	}

	for idx, n := range hits {
		assert.InDelta(t, trials/9, n, 200, "cell %v", config.coordinate(idx))
	}
}

func TestScriptedPlacement(t *testing.T) {
	rnd := scriptedRand{8}
	board, err := Generate(BoardConfig{Width: 3, Height: 3, MineCount: 1}, &rnd)
	require.NoError(t, err)

	content, err := board.ContentAt(Coordinate{2, 2})
	require.NoError(t, err)
	assert.True(t, content.IsMine())
}

func TestNewBoardFromMines(t *testing.T) {
	board, err := NewBoardFromMines(3, 3, []Coordinate{{2, 2}})
	require.NoError(t, err)
	assert.Equal(t, BoardConfig{Width: 3, Height: 3, MineCount: 1}, board.Config())

	_, err = NewBoardFromMines(3, 3, []Coordinate{{3, 0}})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = NewBoardFromMines(3, 3, []Coordinate{{1, 1}, {1, 1}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDump(t *testing.T) {
	board, err := NewBoardFromMines(3, 3, []Coordinate{{2, 2}})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"----------",
		"| 0  0  0|",
		"| 0  1  1|",
		"| 0  1 -1|",
		"----------",
	}, "\n")
	assert.Equal(t, expected, board.Dump())
}
