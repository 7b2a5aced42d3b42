package server

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

var Log = logrus.New()

type Config struct {
	Addr string
	// Directory finished boards are saved to; empty disables saving
	SnapshotsDir string
	Seed         int64
}

// Server keeps game sessions in memory and exposes them over HTTP and
// websockets. Each session is one game.Engine.
type Server struct {
	config Config

	mu       sync.Mutex
	sessions map[string]*session
	nextID   uint64
	seeds    *rand.Rand

	decoder  *schema.Decoder
	upgrader websocket.Upgrader
}

type session struct {
	id     string
	engine *game.Engine

	// held from applying a move until it has been broadcast
	moves sync.Mutex

	mu          sync.Mutex
	subscribers collections.Set[*websocket.Conn]
}

func New(config Config) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Server{
		config:   config,
		sessions: make(map[string]*session),
		seeds:    rand.New(rand.NewSource(config.Seed)),
		decoder:  decoder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Handler() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("POST /game", s.handleNewGame)
	router.HandleFunc("GET /game/{id}", s.handleFetch)
	router.HandleFunc("POST /game/{id}/reveal", s.handleIntent(game.RevealIntent))
	router.HandleFunc("POST /game/{id}/flag", s.handleIntent(game.FlagIntent))
	router.HandleFunc("POST /game/{id}/chord", s.handleIntent(game.ChordIntent))
	router.HandleFunc("POST /game/{id}/reset", s.handleReset)
	router.HandleFunc("/game/{id}/connect", s.handleConnectWS)

	return Wrap(router, Cors(), Logging(Log))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Handler(),
	}

	done := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()

	Log.WithField("addr", s.config.Addr).Info("server listening")

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func (s *Server) createSession(config game.BoardConfig, seed int64, seeded bool) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !seeded {
		seed = s.seeds.Int63()
	}

	engine, err := game.NewEngine(game.GameConfig{
		Board:             config,
		Seed:              seed,
		SavedSnapshotsDir: s.config.SnapshotsDir,
	})
	if err != nil {
		return nil, err
	}

	s.nextID++
	sess := &session{
		id:          strconv.FormatUint(s.nextID, 10),
		engine:      engine,
		subscribers: collections.NewSet[*websocket.Conn](),
	}
	s.sessions[sess.id] = sess

	Log.WithFields(logrus.Fields{"id": sess.id, "config": config, "seed": seed}).Info("created session")

	return sess, nil
}

func (s *Server) session(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// broadcast sends v to every websocket subscribed to the session, dropping
// the ones that fail.
func (sess *session) broadcast(v any) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	for _, conn := range sess.subscribers.Values() {
		if err := conn.WriteJSON(v); err != nil {
			Log.WithError(err).WithField("id", sess.id).Warn("dropping subscriber")
			conn.Close()
			sess.subscribers.Remove(conn)
		}
	}
}

func (sess *session) subscribe(conn *websocket.Conn) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.subscribers.Add(conn)
	Log.WithFields(logrus.Fields{"id": sess.id, "subscribers": sess.subscribers.Len()}).Debug("subscribed")
}

func (sess *session) unsubscribe(conn *websocket.Conn) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.subscribers.Remove(conn)
}
