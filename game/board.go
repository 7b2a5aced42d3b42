package game

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Board owns the content and operational-state grids of one game. It is not
// safe for concurrent use; see Engine.
type Board struct {
	config BoardConfig
	cells  []cell

	state       BoardState
	outcome     Outcome
	numFlags    uint
	numRevealed uint
}

func newBoard(config BoardConfig, layout []bool) *Board {
	board := &Board{
		config: config,
		cells:  make([]cell, config.Area()),
		state:  Ongoing,
	}
	for idx, content := range countContents(config, layout) {
		board.cells[idx] = cell{content: content, state: Hidden}
	}
	return board
}

func (board *Board) Config() BoardConfig {
	return board.config
}

func (board *Board) Width() uint {
	return board.config.Width
}

func (board *Board) Height() uint {
	return board.config.Height
}

func (board *Board) NumCells() uint {
	return board.config.Area()
}

func (board *Board) State() BoardState {
	return board.state
}

// Outcome returns the terminal outcome of the game, or a None outcome while it
// is still being played.
func (board *Board) Outcome() Outcome {
	return board.outcome
}

// RemainingMines is the mine count minus the number of flags placed. It goes
// negative when the player over-flags.
func (board *Board) RemainingMines() int {
	return int(board.config.MineCount) - int(board.numFlags)
}

func (board *Board) ContentAt(c Coordinate) (Content, error) {
	if err := board.check(c); err != nil {
		return 0, err
	}
	return board.cellAt(c).content, nil
}

func (board *Board) StateAt(c Coordinate) (CellState, error) {
	if err := board.check(c); err != nil {
		return Hidden, err
	}
	return board.cellAt(c).state, nil
}

func (board *Board) check(c Coordinate) error {
	if !board.config.Contains(c) {
		return fmt.Errorf("%v on %dx%d board: %w", c, board.config.Width, board.config.Height, ErrOutOfBounds)
	}
	return nil
}

func (board *Board) cellAt(c Coordinate) *cell {
	return &board.cells[board.config.index(c)]
}

func (board *Board) neighbors(c Coordinate) []Coordinate {
	return neighbors(c, board.config.Width, board.config.Height)
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

// Reveal uncovers the cell at c. A flagged cell is left alone unless chain is
// set, which is how flood propagation reaches it.
func (board *Board) Reveal(c Coordinate, chain bool) (Result, error) {
	if err := board.check(c); err != nil {
		return Result{}, err
	}
	if !board.canPlay() {
		return Result{}, nil
	}

	var result Result
	board.reveal(c, chain, &result)
	board.settle(&result)

	Log.WithFields(logrus.Fields{
		"at":      c,
		"chain":   chain,
		"changed": len(result.Changed),
		"outcome": result.Outcome.Kind,
	}).Debug("reveal")

	return result, nil
}

func (board *Board) reveal(c Coordinate, chain bool, result *Result) {
	cell := board.cellAt(c)
	if cell.state == Revealed {
		return
	}
	if cell.state == Flagged && !chain {
		return
	}

	board.uncover(c, result)

	switch {
	case cell.content.IsMine():
		result.Outcome = Outcome{Kind: Loss, Detonated: c}
	case cell.content == 0:
		board.flood(c, result)
	}
}

func (board *Board) uncover(c Coordinate, result *Result) {
	cell := board.cellAt(c)
	if cell.state == Flagged {
		board.numFlags--
	}
	cell.state = Revealed
	board.numRevealed++
	result.Changed = append(result.Changed, c)
}

// settle applies the outcome of an intent to the board: a loss ends the game,
// otherwise a reveal that uncovered the last safe cell wins it.
func (board *Board) settle(result *Result) {
	switch {
	case result.Outcome.Kind == Loss:
		board.end(Lost, result.Outcome)
	case len(result.Changed) > 0 && board.numRevealed == board.config.Area()-board.config.MineCount:
		result.Outcome = Outcome{Kind: Win}
		board.end(Won, result.Outcome)
	}
}

func (board *Board) end(state BoardState, outcome Outcome) {
	board.state = state
	board.outcome = outcome

	fields := logrus.Fields{"state": state, "revealed": board.numRevealed, "flags": board.numFlags}
	if outcome.Kind == Loss {
		fields["detonated"] = outcome.Detonated
	}
	Log.WithFields(fields).Info("game over")
}

// ToggleFlag flips a hidden cell to flagged and back. Revealed cells are left
// alone.
func (board *Board) ToggleFlag(c Coordinate) (Result, error) {
	if err := board.check(c); err != nil {
		return Result{}, err
	}
	if !board.canPlay() {
		return Result{}, nil
	}

	cell := board.cellAt(c)
	switch cell.state {
	case Hidden:
		cell.state = Flagged
		board.numFlags++
	case Flagged:
		cell.state = Hidden
		board.numFlags--
	default:
		return Result{}, nil
	}

	Log.WithFields(logrus.Fields{"at": c, "state": cell.state}).Debug("toggle flag")

	return Result{Changed: []Coordinate{c}}, nil
}

// Chord reveals every hidden neighbour of a revealed number once the player has
// flagged as many neighbours as the number says. The first mine hit ends it.
func (board *Board) Chord(c Coordinate) (Result, error) {
	if err := board.check(c); err != nil {
		return Result{}, err
	}
	if !board.canPlay() {
		return Result{}, nil
	}

	cell := board.cellAt(c)
	if cell.state != Revealed || cell.content.Count() <= 0 {
		return Result{}, nil
	}

	numFlagged := 0
	hidden := make([]Coordinate, 0, len(neighborOffsets))
	for _, neighbor := range board.neighbors(c) {
		switch board.cellAt(neighbor).state {
		case Flagged:
			numFlagged++
		case Hidden:
			hidden = append(hidden, neighbor)
		}
	}
	if numFlagged != cell.content.Count() {
		return Result{}, nil
	}

	var result Result
	for _, neighbor := range hidden {
		board.reveal(neighbor, false, &result)
		if result.Outcome.Kind == Loss {
			break
		}
	}
	board.settle(&result)

	Log.WithFields(logrus.Fields{
		"at":      c,
		"changed": len(result.Changed),
		"outcome": result.Outcome.Kind,
	}).Debug("chord")

	return result, nil
}

// View returns a snapshot of every cell. Contents are disclosed for revealed
// cells, and for all cells once the game has ended.
func (board *Board) View() View {
	view := View{
		Config:         board.config,
		State:          board.state,
		Outcome:        board.outcome,
		RemainingMines: board.RemainingMines(),
		Cells:          make([]CellView, len(board.cells)),
	}
	finished := !board.canPlay()
	for idx, cell := range board.cells {
		cv := CellView{At: board.config.coordinate(idx), State: cell.state}
		if finished || cell.state == Revealed {
			cv.Known = true
			cv.Content = cell.content
		}
		view.Cells[idx] = cv
	}
	return view
}

// Dump renders the content layer for diagnostics, one row per line between
// two separator lines. Mines are shown as -1.
func (board *Board) Dump() string {
	separator := strings.Repeat("-", int(board.config.Width)*3+1)

	var builder strings.Builder
	builder.WriteString(separator)
	builder.WriteString("\n")
	for y := uint(0); y < board.config.Height; y++ {
		row := make([]string, board.config.Width)
		for x := uint(0); x < board.config.Width; x++ {
			row[x] = fmt.Sprintf("%2d", board.cellAt(Coordinate{x, y}).content.Count())
		}
		builder.WriteString("|")
		builder.WriteString(strings.Join(row, " "))
		builder.WriteString("|\n")
	}
	builder.WriteString(separator)
	return builder.String()
}
