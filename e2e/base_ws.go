package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chat-hub/infrastructure/ws"
	"chat-hub/moderation"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

// BaseWsSuite boots the full stack (sqlite, badger, hub, coordinator) behind
// an httptest server unless E2E_SERVER_URL points at a running gateway.
type BaseWsSuite struct {
	suite.Suite
	Config Config

	server  *httptest.Server
	auditDB *badger.DB
	cancel  context.CancelFunc
	dataDir string
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerURL != "" {
		return
	}

	s.dataDir, err = os.MkdirTemp("", "chat-hub-e2e-*")
	s.Require().NoError(err)

	log := slog.Default()

	db, err := repositories.Open(filepath.Join(s.dataDir, "chat.db"))
	s.Require().NoError(err)
	store := repositories.NewStore(db, log)

	s.auditDB, err = badger.Open(badger.DefaultOptions(filepath.Join(s.dataDir, "audit")).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	auditSink := sink.NewAuditSink(log, repositories.NewAuditRepository(s.auditDB, log), 64)

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	go func() { _ = auditSink.Run(ctx) }()

	hub := ws.NewHub(log)
	registry := runtime.NewRegistry()
	presence := runtime.NewPresence(registry, hub)
	moderator, err := moderation.NewModerator([]string{"troll"}, '*', log)
	s.Require().NoError(err)
	router := runtime.NewRouter(log, store, registry, presence, moderator)
	coordinator := runtime.NewCoordinator(log, registry, presence, router, store, hub, auditSink)
	handler := ws.NewHandler(log, coordinator, 64)

	mux := http.NewServeMux()
	mux.Handle("/ws", handler.ServeWS(hub))
	s.server = httptest.NewServer(mux)
	s.Config.ServerURL = "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
}

func (s *BaseWsSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.auditDB != nil {
		_ = s.auditDB.Close()
	}
	if s.dataDir != "" {
		_ = os.RemoveAll(s.dataDir)
	}
}

// Dial opens one client connection with a colorized header in the logs.
func (s *BaseWsSuite) Dial(name string) *wsClient {
	t := s.T()
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	conn, _, err := websocket.DefaultDialer.Dial(s.Config.ServerURL, nil)
	s.Require().NoError(err, "Failed to connect to gateway at "+s.Config.ServerURL)

	client := &wsClient{suite: s, t: t, conn: conn}
	t.Cleanup(client.Close)
	return client
}

// Username dials and claims a unique name in one step.
func (s *BaseWsSuite) Username(prefix string) (*wsClient, string) {
	name := prefix + "-" + uuid.NewString()[:8]
	client := s.Dial(name)
	client.Emit("set_username", name)
	claimed := struct {
		Username string `json:"username"`
	}{}
	client.Await("new_user", &claimed)
	s.Require().Equal(name, claimed.Username)
	return client, name
}

// wsClient wraps one live connection; frames awaited out of order are
// skipped, matching how a browser client consumes the stream.
type wsClient struct {
	suite  *BaseWsSuite
	t      *testing.T
	conn   *websocket.Conn
	closed bool
}

func (c *wsClient) Close() {
	if c.closed {
		return
	}
	c.closed = true
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = c.conn.Close()
}

// Emit sends one event frame. A nil payload sends a bare event.
func (c *wsClient) Emit(event string, payload any) {
	frame := struct {
		Event string `json:"event"`
		Data  any    `json:"data,omitempty"`
	}{Event: event, Data: payload}

	raw, err := json.Marshal(frame)
	c.suite.Require().NoError(err)
	c.log("SEND", raw)
	c.suite.Require().NoError(c.conn.WriteMessage(websocket.TextMessage, raw))
}

// Await reads frames until one matches event, decoding its payload into out
// (which may be nil). Anything else received meanwhile is logged and
// skipped. Fails the test after the deadline.
func (c *wsClient) Await(event string, out any) {
	require := c.suite.Require()
	require.NoError(c.conn.SetReadDeadline(time.Now().Add(5 * time.Second)))

	for {
		_, raw, err := c.conn.ReadMessage()
		require.NoError(err, "connection dropped while waiting for %q", event)
		c.log("RECV", raw)

		var frame struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		require.NoError(json.Unmarshal(raw, &frame))
		if frame.Event != event {
			continue
		}
		if out != nil {
			require.NoError(json.Unmarshal(frame.Data, out))
		}
		return
	}
}

func (c *wsClient) log(direction string, raw []byte) {
	if !c.suite.Config.DebugJSON {
		return
	}
	c.t.Logf("WS %s %s", direction, string(raw))
}
