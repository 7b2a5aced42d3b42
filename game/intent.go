package game

import (
	"fmt"
	"strconv"
	"strings"
)

type IntentKind int

const (
	RevealIntent IntentKind = iota
	FlagIntent
	ChordIntent
)

var intentKindNames = map[IntentKind]string{
	RevealIntent: "reveal",
	FlagIntent:   "flag",
	ChordIntent:  "chord",
}

func (kind IntentKind) String() string {
	return nameOf(intentKindNames, kind)
}

// Intent is a single player action, already mapped to grid coordinates.
type Intent struct {
	Kind IntentKind
	At   Coordinate
}

func Reveal(x, y uint) Intent {
	return Intent{Kind: RevealIntent, At: Coordinate{x, y}}
}

func Flag(x, y uint) Intent {
	return Intent{Kind: FlagIntent, At: Coordinate{x, y}}
}

func Chord(x, y uint) Intent {
	return Intent{Kind: ChordIntent, At: Coordinate{x, y}}
}

func (intent Intent) String() string {
	return fmt.Sprintf("%s %d %d", intent.Kind, intent.At.X, intent.At.Y)
}

var intentCommands = map[string]IntentKind{
	"o":      RevealIntent,
	"r":      RevealIntent,
	"reveal": RevealIntent,
	"f":      FlagIntent,
	"flag":   FlagIntent,
	"c":      ChordIntent,
	"chord":  ChordIntent,
}

// ParseIntent reads a textual command of the form "<verb> <x> <y>", e.g.
// "o 3 4" or "flag 0 0".
func ParseIntent(text string) (Intent, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Intent{}, fmt.Errorf("expected \"<command> <x> <y>\", got %q", text)
	}

	kind, ok := intentCommands[strings.ToLower(fields[0])]
	if !ok {
		return Intent{}, fmt.Errorf("unknown command %q", fields[0])
	}

	x, err := strconv.ParseUint(fields[1], 10, 0)
	if err != nil {
		return Intent{}, fmt.Errorf("invalid x %q: %w", fields[1], err)
	}
	y, err := strconv.ParseUint(fields[2], 10, 0)
	if err != nil {
		return Intent{}, fmt.Errorf("invalid y %q: %w", fields[2], err)
	}

	return Intent{Kind: kind, At: Coordinate{uint(x), uint(y)}}, nil
}

// Apply dispatches intent to the matching board operation.
func (board *Board) Apply(intent Intent) (Result, error) {
	switch intent.Kind {
	case RevealIntent:
		return board.Reveal(intent.At, false)
	case FlagIntent:
		return board.ToggleFlag(intent.At)
	case ChordIntent:
		return board.Chord(intent.At)
	default:
		return Result{}, fmt.Errorf("unknown intent %v", intent.Kind)
	}
}
