package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
)

type newGameParams struct {
	Width     uint  `schema:"width,required"`
	Height    uint  `schema:"height,required"`
	MineCount uint  `schema:"mine_count,required"`
	Seed      int64 `schema:"seed"`
}

func (p newGameParams) boardConfig() game.BoardConfig {
	return game.BoardConfig{Width: p.Width, Height: p.Height, MineCount: p.MineCount}
}

type SessionDTO struct {
	ID   string    `json:"id"`
	Seed int64     `json:"seed"`
	View game.View `json:"view"`
}

type MoveDTO struct {
	Result game.Result `json:"result"`
	View   game.View   `json:"view"`
}

func newSessionDTO(sess *session) SessionDTO {
	return SessionDTO{ID: sess.id, Seed: sess.engine.Seed(), View: sess.engine.View()}
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params newGameParams
	if err := s.decoder.Decode(&params, query); err != nil {
		sendError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.createSession(params.boardConfig(), params.Seed, query.Has("seed"))
	if err != nil {
		sendError(w, statusFor(err), err)
		return
	}

	sendJSONOrLog(w, http.StatusCreated, newSessionDTO(sess))
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	sendJSONOrLog(w, http.StatusOK, newSessionDTO(sess))
}

func (s *Server) handleIntent(kind game.IntentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.session(r.PathValue("id"))
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var at game.Coordinate
		if err := s.decoder.Decode(&at, r.URL.Query()); err != nil {
			sendError(w, http.StatusBadRequest, err)
			return
		}

		move, err := apply(sess, game.Intent{Kind: kind, At: at})
		if err != nil {
			sendError(w, statusFor(err), err)
			return
		}

		sendJSONOrLog(w, http.StatusOK, move)
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var params newGameParams
	if err := s.decoder.Decode(&params, r.URL.Query()); err != nil {
		sendError(w, http.StatusBadRequest, err)
		return
	}

	sess.moves.Lock()
	defer sess.moves.Unlock()

	if err := sess.engine.NewGame(params.boardConfig()); err != nil {
		sendError(w, statusFor(err), err)
		return
	}

	dto := newSessionDTO(sess)
	sess.broadcast(dto)
	sendJSONOrLog(w, http.StatusOK, dto)
}

// apply runs intent against the session and notifies its websocket
// subscribers. Subscribers see moves in the order they were applied.
func apply(sess *session, intent game.Intent) (MoveDTO, error) {
	sess.moves.Lock()
	defer sess.moves.Unlock()

	result, view, err := sess.engine.Play(intent)
	if err != nil {
		return MoveDTO{}, err
	}

	move := MoveDTO{Result: result, View: view}

	Log.WithFields(logrus.Fields{
		"id":      sess.id,
		"intent":  intent,
		"outcome": result.Outcome.Kind,
	}).Debug("applied intent")

	sess.broadcast(move)
	return move, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidConfig), errors.Is(err, game.ErrOutOfBounds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sendJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func sendJSONOrLog(w http.ResponseWriter, status int, v any) {
	if err := sendJSON(w, status, v); err != nil {
		Log.WithError(err).WithField("response", v).Error("unable to send response")
	}
}

func sendError(w http.ResponseWriter, status int, err error) {
	sendJSONOrLog(w, status, wrapError(err))
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
