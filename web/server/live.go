package server

import (
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

// handleLive serves the retrace loop over a websocket: the client sends a
// TraceRequest whenever its scene changes and gets the full trace result
// back. Debounce policy is entirely the client's concern; every message
// is one stateless pass over the snapshot it carries.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	opts := &websocket.AcceptOptions{}
	if s.cfg.AllowedOrigins == "*" {
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = strings.Split(s.cfg.AllowedOrigins, ",")
	}

	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		s.logger.Error("websocket accept", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	sessionID := uuid.New().String()[:8]
	s.logger.Info("live session opened", "session", sessionID)

	ctx := r.Context()
	for {
		var req TraceRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				s.logger.Info("live session closed", "session", sessionID)
			} else {
				s.logger.Warn("live session read", "session", sessionID, "error", err)
			}
			return
		}

		resp, _, err := s.runTrace(&req)
		if err != nil {
			if werr := wsjson.Write(ctx, conn, map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}

		if err := wsjson.Write(ctx, conn, resp); err != nil {
			s.logger.Warn("live session write", "session", sessionID, "error", err)
			return
		}
	}
}
