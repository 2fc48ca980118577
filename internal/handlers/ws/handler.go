// Package ws is the WebSocket gateway. It upgrades connections, routes
// action tokens into the game service, and carries game output back
// over the same connection through the session registry.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the WebSocket handler
type HandlerConfig struct {
	GameService game.Service
	Registry    *Registry
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	if c.Registry == nil {
		return errors.InvalidArgument("registry is required")
	}
	return nil
}

// Handler accepts WebSocket connections and bridges them to the game
// service
type Handler struct {
	game     game.Service
	registry *Registry
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		game:     cfg.GameService,
		registry: cfg.Registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP upgrades the connection and starts the session pumps
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "websocket upgrade failed", "error", err.Error())
		return
	}

	sess := newSession(h, conn)
	go sess.writePump()
	go sess.readPump()
}
