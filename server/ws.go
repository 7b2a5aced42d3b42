package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
)

// wsNoop asks for the current state without acting.
const wsNoop = "g"

// handleConnectWS upgrades to a websocket that accepts one textual intent per
// line ("o x y", "f x y", "c x y", or "g") and pushes every move made on the
// session, from any client, as a MoveDTO.
func (s *Server) handleConnectWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.WithError(err).Error("upgrade")
		return
	}
	defer conn.Close()

	sess.subscribe(conn)
	defer sess.unsubscribe(conn)

	log := Log.WithFields(logrus.Fields{"id": sess.id, "remoteAddr": r.RemoteAddr})

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		for _, line := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if line == wsNoop {
				sess.send(conn, MoveDTO{View: sess.engine.View()})
				continue
			}

			intent, err := game.ParseIntent(line)
			if err != nil {
				sess.send(conn, wrapError(err))
				continue
			}

			if _, err := apply(sess, intent); err != nil {
				sess.send(conn, wrapError(err))
			}
		}
	}
}

// send writes v to a single subscriber. Writes share the session lock with
// broadcast since a websocket connection allows one writer at a time.
func (sess *session) send(conn *websocket.Conn, v any) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := conn.WriteJSON(v); err != nil {
		Log.WithError(err).WithField("id", sess.id).Warn("write")
	}
}
