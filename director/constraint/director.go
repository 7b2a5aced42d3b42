package constraint

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

// simplifyPasses bounds how many rounds of subset splitting run per step.
const simplifyPasses = 4

// Director plays by reading constraints off the revealed numbers. Each step it
// tries, in order: a move that is certain, a reveal of the frontier cell least
// likely to be a mine, and a random reveal.
type Director struct {
	Seed int64

	rand     *rand.Rand
	fallback random.Director
}

// observation says exactly numMines of cells are mines.
type observation struct {
	origin   game.Coordinate
	numMines int
	cells    collections.Set[game.Coordinate]
}

func (obs observation) String() string {
	cells := make([]string, 0, obs.cells.Len())
	for _, c := range sortedCells(obs.cells) {
		cells = append(cells, c.String())
	}
	return fmt.Sprintf("Obs[%v, %d ε %s]", obs.origin, obs.numMines, strings.Join(cells, ", "))
}

func (obs observation) mineProbability() float64 {
	return float64(obs.numMines) / float64(obs.cells.Len())
}

func (obs observation) key() string {
	return fmt.Sprint(sortedCells(obs.cells))
}

func (director *Director) Init(view game.View) {
	director.rand = rand.New(rand.NewSource(director.Seed))
	director.fallback = random.Director{Seed: director.Seed}
	director.fallback.Init(view)
}

func (director *Director) Act(view game.View) (game.Intent, bool) {
	observations := observe(view)
	for i := 0; i < simplifyPasses; i++ {
		observations = simplify(observations)
	}

	if intent, ok := actDeliberate(observations); ok {
		return intent, true
	}
	if intent, ok := director.actLowestProbability(observations); ok {
		return intent, true
	}
	return director.fallback.Act(view)
}

// actDeliberate flags a cell of an observation that is all mines, or reveals
// one of an observation that has none.
func actDeliberate(observations []observation) (game.Intent, bool) {
	for _, obs := range observations {
		switch obs.numMines {
		case obs.cells.Len():
			c := sortedCells(obs.cells)[0]
			return game.Flag(c.X, c.Y), true
		case 0:
			c := sortedCells(obs.cells)[0]
			return game.Reveal(c.X, c.Y), true
		}
	}
	return game.Intent{}, false
}

func (director *Director) actLowestProbability(observations []observation) (game.Intent, bool) {
	probabilities := make(map[game.Coordinate]float64)
	for _, obs := range observations {
		p := obs.mineProbability()
		for c := range obs.cells {
			if past, ok := probabilities[c]; !ok || p < past {
				probabilities[c] = p
			}
		}
	}
	if len(probabilities) == 0 {
		return game.Intent{}, false
	}

	lowest := 1.0
	for _, p := range probabilities {
		if p < lowest {
			lowest = p
		}
	}

	candidates := collections.NewSet[game.Coordinate]()
	for c, p := range probabilities {
		if p <= lowest {
			candidates.Add(c)
		}
	}

	ordered := sortedCells(candidates)
	c := ordered[director.rand.Intn(len(ordered))]
	return game.Reveal(c.X, c.Y), true
}

// observe reads one observation off every revealed number that still borders
// hidden cells.
func observe(view game.View) []observation {
	var observations []observation
	seen := collections.NewSet[string]()

	for _, cell := range view.Cells {
		if cell.State != game.Revealed || !cell.Known || cell.Content.Count() <= 0 {
			continue
		}

		obs := observation{
			origin:   cell.At,
			numMines: cell.Content.Count(),
			cells:    collections.NewSet[game.Coordinate](),
		}
		for _, neighbor := range view.Config.Neighbors(cell.At) {
			nv, _ := view.At(neighbor)
			switch nv.State {
			case game.Flagged:
				obs.numMines--
			case game.Hidden:
				obs.cells.Add(neighbor)
			}
		}

		if obs.cells.Len() == 0 || seen.Contains(obs.key()) {
			continue
		}
		seen.Add(obs.key())
		observations = append(observations, obs)
	}

	return observations
}

// simplify splits every observation that contains another one: the cells
// outside the smaller one hold the difference of their mine counts.
func simplify(observations []observation) []observation {
	out := append([]observation(nil), observations...)
	seen := collections.NewSet[string]()
	for _, obs := range observations {
		seen.Add(obs.key())
	}

	for _, inner := range observations {
		for _, outer := range observations {
			if inner.cells.Len() >= outer.cells.Len() || !isSubset(inner.cells, outer.cells) {
				continue
			}

			split := observation{
				origin:   outer.origin,
				numMines: outer.numMines - inner.numMines,
				cells:    collections.NewSet[game.Coordinate](),
			}
			for c := range outer.cells {
				if !inner.cells.Contains(c) {
					split.cells.Add(c)
				}
			}

			if seen.Contains(split.key()) {
				continue
			}
			seen.Add(split.key())
			out = append(out, split)
		}
	}

	return out
}

func isSubset(inner, outer collections.Set[game.Coordinate]) bool {
	for c := range inner {
		if !outer.Contains(c) {
			return false
		}
	}
	return true
}

func sortedCells(cells collections.Set[game.Coordinate]) []game.Coordinate {
	ordered := cells.Values()
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y < ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})
	return ordered
}
