package game

import "fmt"

type cell struct {
	content Content
	state   CellState
}

func (cell *cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.content, cell.state)
}

// CellView is the read-only pair a renderer needs to draw one cell. Content is
// only filled in once it is Known: the cell has been revealed, or the game is
// over.
type CellView struct {
	At      Coordinate `json:"at"`
	State   CellState  `json:"state"`
	Known   bool       `json:"known"`
	Content Content    `json:"content"`
}

// View is a snapshot of a board taken between two intents.
type View struct {
	Config         BoardConfig `json:"config"`
	State          BoardState  `json:"state"`
	Outcome        Outcome     `json:"outcome"`
	RemainingMines int         `json:"remaining_mines"`
	Cells          []CellView  `json:"cells"`
}

func (view View) At(c Coordinate) (CellView, bool) {
	if !view.Config.Contains(c) {
		return CellView{}, false
	}
	return view.Cells[view.Config.index(c)], true
}

func (view View) Finished() bool {
	return view.State != Ongoing
}
