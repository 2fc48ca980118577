// Package notify defines the outbound presentation boundary. The game
// orchestrator never talks to a transport directly; it renders messages
// through a Sink so the same flow drives a websocket session, a
// terminal, or a test double.
package notify

//go:generate mockgen -destination=mock/mock_sink.go -package=notifymock github.com/firetop/gamebook-api/internal/notify Sink

import "context"

// Choice is one actionable button attached to a message. Action is an
// opaque token the transport echoes back when the player picks it.
type Choice struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Message is one rendered game message
type Message struct {
	Text    string   `json:"text"`
	Image   string   `json:"image,omitempty"`
	Choices []Choice `json:"choices,omitempty"`
}

// Sink delivers rendered messages to a player
type Sink interface {
	// Render delivers a message and returns its transport-assigned ID,
	// or empty if the transport does not track messages.
	Render(ctx context.Context, playerID string, msg *Message) (string, error)

	// ClearChoices removes the buttons from a previously delivered
	// message so stale choices cannot be re-picked.
	ClearChoices(ctx context.Context, playerID, messageID string) error
}
