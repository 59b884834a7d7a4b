// The read pump listens to frames from the peer and dispatches them to the
// coordinator. The write pump drains the client's send channel back to the
// peer. Separating read/write avoids head-of-line blocking when a peer is
// slow.
package ws

import (
	"context"
	"log/slog"
	"sync"

	"chat-hub/domain"

	"github.com/gorilla/websocket"
)

// Client is one live WebSocket connection.
type Client struct {
	id   domain.ConnID
	hub  *Hub
	conn *websocket.Conn
	log  *slog.Logger

	// mu serializes sends with shutdown: the send channel is only ever
	// closed under it, so a fan-out racing a disconnect drops the frame
	// instead of panicking on a closed channel.
	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func newClient(id domain.ConnID, hub *Hub, conn *websocket.Conn, bufferSize int, log *slog.Logger) *Client {
	return &Client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: make(chan []byte, bufferSize),
		log:  log,
	}
}

// trySend queues a frame for the write pump. It reports delivered=false
// with closed=true when the client is already shut down, and both false
// when the buffer is full.
func (c *Client) trySend(frame []byte) (delivered, closed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false, true
	}
	select {
	case c.send <- frame:
		return true, false
	default:
		return false, false
	}
}

// shutdown closes the send channel exactly once, terminating the write
// pump. Safe to call multiple times.
func (c *Client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// readPump dispatches inbound frames until the connection drops. On exit
// the client leaves the hub first, so the coordinator's disconnect
// presence snapshot no longer includes it.
func (c *Client) readPump(ctx context.Context, handler *Handler) {
	defer func() {
		c.hub.unregister(c.id)
		handler.coordinator.Disconnect(c.id)
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("connection read failed", "conn", c.id, "error", err)
			}
			return
		}
		handler.dispatch(ctx, c, raw)
	}
}

// writePump drains the send channel. The hub closes the channel on
// unregister, which terminates the loop.
func (c *Client) writePump() {
	defer func() { _ = c.conn.Close() }()

	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			c.log.Warn("connection write failed", "conn", c.id, "error", err)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
