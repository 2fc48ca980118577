package ws

import (
	"context"
	"sync"

	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/notify"
	"github.com/firetop/gamebook-api/internal/pkg/idgen"
)

// Registry tracks which connection each player currently holds and
// implements the notification sink over those connections. It is
// created before the game service so the two can be wired without a
// construction cycle.
type Registry struct {
	idGen idgen.Generator

	mu       sync.RWMutex
	sessions map[string]*session

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{
		idGen:    idgen.NewUUID("msg"),
		sessions: make(map[string]*session),
		locks:    make(map[string]*sync.Mutex),
	}
}

// playerLock returns the mutex serializing game actions for one player.
// A displaced connection can still be mid-action when its replacement
// starts reading, so serialization cannot rely on the read pump alone.
func (r *Registry) playerLock(playerID string) *sync.Mutex {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	lock := r.locks[playerID]
	if lock == nil {
		lock = &sync.Mutex{}
		r.locks[playerID] = lock
	}
	return lock
}

// Render delivers a message to the player's active connection and
// returns its assigned identifier. A player with no connection gets a
// not-found error; the orchestrator logs and moves on.
func (r *Registry) Render(_ context.Context, playerID string, msg *notify.Message) (string, error) {
	sess := r.session(playerID)
	if sess == nil {
		return "", errors.NotFoundf("player %s is not connected", playerID)
	}

	frame := serverFrame{
		Type:      frameMessage,
		MessageID: r.idGen.Generate(),
		Text:      msg.Text,
		Image:     msg.Image,
	}
	for _, c := range msg.Choices {
		frame.Choices = append(frame.Choices, choiceView{Text: c.Text, Action: c.Action})
	}

	if err := sess.enqueue(frame); err != nil {
		return "", err
	}
	return frame.MessageID, nil
}

// ClearChoices tells the client to strip the buttons from a previously
// delivered message
func (r *Registry) ClearChoices(_ context.Context, playerID, messageID string) error {
	sess := r.session(playerID)
	if sess == nil {
		return errors.NotFoundf("player %s is not connected", playerID)
	}
	return sess.enqueue(serverFrame{Type: frameClearChoices, MessageID: messageID})
}

func (r *Registry) session(playerID string) *session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[playerID]
}

// register binds a player to a session. A player reconnecting from a
// new tab displaces the previous connection.
func (r *Registry) register(playerID string, sess *session) {
	r.mu.Lock()
	prev := r.sessions[playerID]
	r.sessions[playerID] = sess
	r.mu.Unlock()

	if prev != nil && prev != sess {
		prev.close()
	}
}

// unregister removes the binding, unless the player already reconnected
func (r *Registry) unregister(playerID string, sess *session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[playerID] == sess {
		delete(r.sessions, playerID)
	}
}

var _ notify.Sink = (*Registry)(nil)
