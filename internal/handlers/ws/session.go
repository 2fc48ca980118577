package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/orchestrators/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024

	sendBufferSize = 64
)

// session is one live connection. Reads are sequential by nature of
// the pump, so a player's actions are applied one at a time.
type session struct {
	handler *Handler
	conn    *websocket.Conn

	playerID string

	send      chan serverFrame
	closeOnce sync.Once
	done      chan struct{}
}

func newSession(h *Handler, conn *websocket.Conn) *session {
	return &session{
		handler: h,
		conn:    conn,
		send:    make(chan serverFrame, sendBufferSize),
		done:    make(chan struct{}),
	}
}

// enqueue hands a frame to the write pump without blocking. A client
// too slow to drain its buffer loses the frame.
func (s *session) enqueue(frame serverFrame) error {
	select {
	case s.send <- frame:
		return nil
	case <-s.done:
		return errors.Internal("connection is closed")
	default:
		return errors.Internalf("send buffer full for player %s", s.playerID)
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if err := s.conn.Close(); err != nil {
			slog.Debug("failed to close websocket connection",
				"player_id", s.playerID,
				"error", err.Error())
		}
	})
}

// readPump performs the hello handshake, then feeds action tokens into
// the game service until the connection drops.
func (s *session) readPump() {
	defer func() {
		if s.playerID != "" {
			s.handler.registry.unregister(s.playerID, s)
			slog.Info("player disconnected", "player_id", s.playerID)
		}
		s.close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		slog.Warn("failed to set read deadline", "error", err.Error())
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	var hello clientFrame
	if err := s.conn.ReadJSON(&hello); err != nil {
		slog.Warn("websocket handshake failed", "error", err.Error())
		return
	}
	if hello.Type != frameHello || hello.PlayerID == "" {
		_ = s.enqueue(serverFrame{Type: frameError, Text: "hello frame with playerId required"})
		return
	}

	s.playerID = hello.PlayerID
	s.handler.registry.register(s.playerID, s)
	slog.Info("player connected", "player_id", s.playerID)

	ctx := context.Background()
	lock := s.handler.registry.playerLock(s.playerID)

	lock.Lock()
	_, err := s.handler.game.ShowMenu(ctx, &game.ShowMenuInput{PlayerID: s.playerID})
	lock.Unlock()
	if err != nil {
		slog.ErrorContext(ctx, "failed to show menu",
			"player_id", s.playerID,
			"error", err.Error())
	}

	for {
		var frame clientFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read failed",
					"player_id", s.playerID,
					"error", err.Error())
			}
			return
		}
		if frame.Type != frameAction || frame.Action == "" {
			continue
		}

		lock.Lock()
		_, err := s.handler.game.HandleAction(ctx, &game.HandleActionInput{
			PlayerID: s.playerID,
			Action:   frame.Action,
		})
		lock.Unlock()
		if err != nil {
			slog.ErrorContext(ctx, "action failed",
				"player_id", s.playerID,
				"action", frame.Action,
				"error", err.Error())
			_ = s.enqueue(serverFrame{Type: frameError, Text: "Algo deu errado. Tente novamente."})
		}
	}
}

// writePump drains the send channel onto the wire and keeps the
// connection alive with pings
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.close()
	}()

	for {
		select {
		case frame, ok := <-s.send:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				slog.Warn("failed to set write deadline", "error", err.Error())
			}
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteJSON(frame); err != nil {
				return
			}

		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				slog.Warn("failed to set ping write deadline", "error", err.Error())
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-s.done:
			return
		}
	}
}
