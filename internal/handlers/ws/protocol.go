package ws

// clientFrame is what the browser sends. The first frame of a
// connection must be a hello carrying the player identifier; every
// frame after that is an action token from a rendered choice.
type clientFrame struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId,omitempty"`
	Action   string `json:"action,omitempty"`
}

// Client frame types
const (
	frameHello  = "hello"
	frameAction = "action"
)

// choiceView is one actionable button
type choiceView struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// serverFrame is what the server sends
type serverFrame struct {
	Type      string       `json:"type"`
	MessageID string       `json:"messageId,omitempty"`
	Text      string       `json:"text,omitempty"`
	Image     string       `json:"image,omitempty"`
	Choices   []choiceView `json:"choices,omitempty"`
}

// Server frame types
const (
	frameMessage      = "message"
	frameClearChoices = "clear_choices"
	frameError        = "error"
)
