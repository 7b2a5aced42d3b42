package game

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Board BoardConfig

	Seed int64

	// Snapshot to load the first board from
	Snapshot *BoardSnapshot
	// Whether to set all cells as hidden when loading the Snapshot
	LoadSnapshotFresh bool

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Board:             BoardConfig{Width: 30, Height: 16, MineCount: 99},
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

// Engine owns the current board of a game session and serialises every intent
// against it. Readers get post-intent snapshots only.
type Engine struct {
	mu sync.Mutex

	config GameConfig
	rand   *rand.Rand
	seed   int64
	board  *Board
}

func NewEngine(config GameConfig) (*Engine, error) {
	engine := &Engine{
		config: config,
		rand:   rand.New(rand.NewSource(config.Seed)),
	}

	if config.Snapshot != nil {
		board, err := config.Snapshot.CreateBoard(config.LoadSnapshotFresh)
		if err != nil {
			return nil, err
		}
		engine.board = board
		engine.seed = config.Snapshot.Seed
		engine.config.Board = board.Config()
		return engine, nil
	}

	board, err := Generate(config.Board, rand.New(rand.NewSource(config.Seed)))
	if err != nil {
		return nil, err
	}
	engine.board = board
	engine.seed = config.Seed

	return engine, nil
}

// NewGame replaces the board with a freshly generated one. An invalid config
// is rejected and the current board kept.
func (engine *Engine) NewGame(config BoardConfig) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if err := config.Validate(); err != nil {
		return err
	}

	seed := engine.rand.Int63()
	board, err := Generate(config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	engine.board = board
	engine.seed = seed
	engine.config.Board = config

	Log.WithFields(logrus.Fields{"seed": seed, "config": config}).Info("new game")

	return nil
}

func (engine *Engine) Apply(intent Intent) (Result, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.apply(intent)
}

// Play applies intent and returns the view right after it, before any other
// intent can run.
func (engine *Engine) Play(intent Intent) (Result, View, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	result, err := engine.apply(intent)
	if err != nil {
		return result, View{}, err
	}
	return result, engine.board.View(), nil
}

func (engine *Engine) apply(intent Intent) (Result, error) {
	wasPlaying := engine.board.canPlay()

	result, err := engine.board.Apply(intent)
	if err != nil {
		return result, err
	}

	if wasPlaying && !engine.board.canPlay() {
		engine.onGameEnd()
	}

	return result, nil
}

func (engine *Engine) Reveal(c Coordinate) (Result, error) {
	return engine.Apply(Intent{Kind: RevealIntent, At: c})
}

func (engine *Engine) ToggleFlag(c Coordinate) (Result, error) {
	return engine.Apply(Intent{Kind: FlagIntent, At: c})
}

func (engine *Engine) Chord(c Coordinate) (Result, error) {
	return engine.Apply(Intent{Kind: ChordIntent, At: c})
}

func (engine *Engine) View() View {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.board.View()
}

func (engine *Engine) Dump() string {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.board.Dump()
}

func (engine *Engine) Seed() int64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.seed
}

func (engine *Engine) Snapshot() *BoardSnapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.board.Snapshot(engine.seed)
}

func (engine *Engine) onGameEnd() {
	if engine.config.SavedSnapshotsDir == "" {
		return
	}
	path, err := engine.saveSnapshot(time.Now())
	if err != nil {
		Log.WithError(err).Error("unable to save board snapshot")
		return
	}
	Log.WithField("path", path).Info("saved board snapshot")
}

func (engine *Engine) saveSnapshot(t time.Time) (string, error) {
	dir := engine.config.SavedSnapshotsDir

	stat, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	case !stat.Mode().IsDir():
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	serialized, err := engine.board.Snapshot(engine.seed).Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, engine.generateReplayFilename(t))
	if err := os.WriteFile(path, []byte(serialized), 0o666); err != nil {
		return "", err
	}
	return path, nil
}

func (engine *Engine) generateReplayFilename(t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	fmt.Fprintf(&filenameBuilder, "%d_", engine.seed)

	var stateStr string
	switch engine.board.state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
