package ws_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/handlers/ws"
	"github.com/firetop/gamebook-api/internal/notify"
	"github.com/firetop/gamebook-api/internal/orchestrators/game"
	gamemock "github.com/firetop/gamebook-api/internal/orchestrators/game/mock"
)

type WSHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	service  *gamemock.MockService
	registry *ws.Registry
	handler  *ws.Handler
	server   *httptest.Server
}

func (s *WSHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = gamemock.NewMockService(s.ctrl)

	s.registry = ws.NewRegistry()
	handler, err := ws.NewHandler(&ws.HandlerConfig{GameService: s.service, Registry: s.registry})
	s.Require().NoError(err)
	s.handler = handler
	s.server = httptest.NewServer(handler)
}

func (s *WSHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *WSHandlerTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn
}

// connect dials, sends the hello frame, and waits until the menu has
// been requested, which means the session is registered.
func (s *WSHandlerTestSuite) connect(playerID string) *websocket.Conn {
	menuShown := make(chan struct{})
	s.service.EXPECT().
		ShowMenu(gomock.Any(), &game.ShowMenuInput{PlayerID: playerID}).
		DoAndReturn(func(context.Context, *game.ShowMenuInput) (*game.ShowMenuOutput, error) {
			close(menuShown)
			return &game.ShowMenuOutput{}, nil
		})

	conn := s.dial()
	s.Require().NoError(conn.WriteJSON(map[string]string{"type": "hello", "playerId": playerID}))

	select {
	case <-menuShown:
	case <-time.After(2 * time.Second):
		s.FailNow("session never registered")
	}
	return conn
}

func (s *WSHandlerTestSuite) TestConfigValidation() {
	_, err := ws.NewHandler(&ws.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *WSHandlerTestSuite) TestHelloThenRender() {
	conn := s.connect("player_42")
	defer func() { _ = conn.Close() }()

	id, err := s.registry.Render(context.Background(), "player_42", &notify.Message{
		Text: "Você está na encruzilhada.",
		Choices: []notify.Choice{
			{Text: "Seguir", Action: "option_2"},
		},
	})
	s.Require().NoError(err)
	s.NotEmpty(id)

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame map[string]any
	s.Require().NoError(conn.ReadJSON(&frame))

	s.Equal("message", frame["type"])
	s.Equal(id, frame["messageId"])
	s.Equal("Você está na encruzilhada.", frame["text"])
	choices := frame["choices"].([]any)
	s.Require().Len(choices, 1)
	s.Equal("option_2", choices[0].(map[string]any)["action"])
}

func (s *WSHandlerTestSuite) TestActionIsRouted() {
	conn := s.connect("player_42")
	defer func() { _ = conn.Close() }()

	handled := make(chan string, 1)
	s.service.EXPECT().
		HandleAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.HandleActionInput) (*game.HandleActionOutput, error) {
			handled <- input.Action
			return &game.HandleActionOutput{}, nil
		})

	s.Require().NoError(conn.WriteJSON(map[string]string{"type": "action", "action": "combat_attack_3"}))

	select {
	case action := <-handled:
		s.Equal("combat_attack_3", action)
	case <-time.After(2 * time.Second):
		s.FailNow("action never reached the game service")
	}
}

func (s *WSHandlerTestSuite) TestClearChoices() {
	conn := s.connect("player_42")
	defer func() { _ = conn.Close() }()

	err := s.registry.ClearChoices(context.Background(), "player_42", "msg_abc")
	s.Require().NoError(err)

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame map[string]any
	s.Require().NoError(conn.ReadJSON(&frame))
	s.Equal("clear_choices", frame["type"])
	s.Equal("msg_abc", frame["messageId"])
}

func (s *WSHandlerTestSuite) TestRenderToDisconnectedPlayer() {
	_, err := s.registry.Render(context.Background(), "player_offline", &notify.Message{Text: "oi"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *WSHandlerTestSuite) TestHelloRequired() {
	conn := s.dial()
	defer func() { _ = conn.Close() }()

	s.Require().NoError(conn.WriteJSON(map[string]string{"type": "action", "action": "option_1"}))

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame map[string]any
	s.Require().NoError(conn.ReadJSON(&frame))
	s.Equal("error", frame["type"])
}

func TestWSHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WSHandlerTestSuite))
}
