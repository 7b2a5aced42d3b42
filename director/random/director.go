package random

import (
	"math/rand"

	"github.com/they4kman/gosweep/game"
)

// Director reveals hidden, unflagged cells in a random order fixed at Init.
type Director struct {
	Seed int64

	order []game.Coordinate
	next  int
}

func (director *Director) Init(view game.View) {
	director.order = make([]game.Coordinate, len(view.Cells))
	for i, cell := range view.Cells {
		director.order[i] = cell.At
	}
	director.next = 0

	r := rand.New(rand.NewSource(director.Seed))
	r.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act(view game.View) (game.Intent, bool) {
	for ; director.next < len(director.order); director.next++ {
		c := director.order[director.next]
		cell, ok := view.At(c)
		if ok && cell.State == game.Hidden {
			director.next++
			return game.Intent{Kind: game.RevealIntent, At: c}, true
		}
	}
	return game.Intent{}, false
}
