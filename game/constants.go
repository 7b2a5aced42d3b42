package game

import "fmt"

// CellState is the player-visible status of a single cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

var cellStateNames = map[CellState]string{
	Hidden:   "hidden",
	Revealed: "revealed",
	Flagged:  "flagged",
}

func (state CellState) String() string {
	return nameOf(cellStateNames, state)
}

func (state CellState) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

func (state *CellState) UnmarshalText(text []byte) error {
	return parseName(cellStateNames, string(text), state)
}

type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

var boardStateNames = map[BoardState]string{
	Lost:    "lost",
	Won:     "won",
	Ongoing: "ongoing",
}

func (state BoardState) String() string {
	return nameOf(boardStateNames, state)
}

func (state BoardState) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

func (state *BoardState) UnmarshalText(text []byte) error {
	return parseName(boardStateNames, string(text), state)
}

type OutcomeKind int

const (
	None OutcomeKind = iota
	Loss
	Win
)

var outcomeKindNames = map[OutcomeKind]string{
	None: "none",
	Loss: "loss",
	Win:  "win",
}

func (kind OutcomeKind) String() string {
	return nameOf(outcomeKindNames, kind)
}

func (kind OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

func (kind *OutcomeKind) UnmarshalText(text []byte) error {
	return parseName(outcomeKindNames, string(text), kind)
}

// Outcome is the terminal result of a single intent. Detonated is only
// meaningful for Loss.
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	Detonated Coordinate  `json:"detonated"`
}

func (outcome Outcome) IsTerminal() bool {
	return outcome.Kind != None
}

// Result reports what an intent did: every cell whose state changed, in the
// order it changed, and the outcome.
type Result struct {
	Outcome Outcome      `json:"outcome"`
	Changed []Coordinate `json:"changed"`
}

const (
	maxSafeCount = 8
	mineValue    = -1
)

func nameOf[K ~int](names map[K]string, value K) string {
	if name, ok := names[value]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", value)
}

func parseName[K ~int](names map[K]string, text string, out *K) error {
	for value, name := range names {
		if name == text {
			*out = value
			return nil
		}
	}
	return fmt.Errorf("unknown value %q", text)
}
