package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot captures a board as text, one character per cell:
//
//	* detonated mine   F flagged mine   O hidden mine
//	f flagged safe     . revealed safe  # hidden safe
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	var rows strings.Builder
	for y := uint(0); y < board.config.Height; y++ {
		if y > 0 {
			rows.WriteString("\n")
		}
		for x := uint(0); x < board.config.Width; x++ {
			rows.WriteByte(board.cellAt(Coordinate{x, y}).serialize())
		}
	}
	return &BoardSnapshot{Seed: seed, SerializedBoard: rows.String()}
}

func (cell *cell) serialize() byte {
	switch {
	case cell.content.IsMine():
		switch cell.state {
		case Revealed:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.state == Flagged:
		return 'f'
	case cell.state == Revealed:
		return '.'
	default:
		return '#'
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CreateBoard rebuilds the board the snapshot was taken from. With fresh set
// every cell starts hidden again; otherwise flags, revealed cells and a
// detonated mine are restored as recorded.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	height := uint(len(rows))
	width := uint(len(strings.TrimSpace(rows[0])))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrBadSnapshot)
	}

	var mines []Coordinate
	states := make([]CellState, 0, width*height)
	detonated := -1

	for y, row := range rows {
		row = strings.TrimSpace(row)
		if uint(len(row)) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrBadSnapshot, y, len(row), width)
		}

		for x := 0; x < len(row); x++ {
			c := Coordinate{uint(x), uint(y)}
			state := Hidden

			switch row[x] {
			case '*':
				mines = append(mines, c)
				state = Revealed
				if detonated >= 0 {
					return nil, fmt.Errorf("%w: more than one detonated mine", ErrBadSnapshot)
				}
				detonated = len(states)
			case 'F':
				mines = append(mines, c)
				state = Flagged
			case 'O':
				mines = append(mines, c)
			case 'f':
				state = Flagged
			case '.':
				state = Revealed
			case '#':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrBadSnapshot, row[x], c)
			}

			states = append(states, state)
		}
	}

	board, err := NewBoardFromMines(width, height, mines)
	if err != nil {
		return nil, err
	}
	if fresh {
		return board, nil
	}

	for idx, state := range states {
		board.cells[idx].state = state
		switch state {
		case Revealed:
			board.numRevealed++
		case Flagged:
			board.numFlags++
		}
	}

	if detonated >= 0 {
		board.state = Lost
		board.outcome = Outcome{Kind: Loss, Detonated: board.config.coordinate(detonated)}
	} else if board.numRevealed > 0 && board.numRevealed == board.config.Area()-board.config.MineCount {
		board.state = Won
		board.outcome = Outcome{Kind: Win}
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
