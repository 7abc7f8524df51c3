// internal/ws/client.go
package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one live authenticated connection. Destroyed on disconnect; a
// re-authenticating user gets a fresh Client with a fresh SocketID.
type Client struct {
	SocketID    string
	UserID      string
	Username    string
	ProfileName string
	DisplayName string

	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn, socketID string, id *Identity) *Client {
	return &Client{
		SocketID:    socketID,
		UserID:      id.UserID,
		Username:    id.Username,
		ProfileName: id.ProfileName,
		DisplayName: id.DisplayName,
		conn:        conn,
		send:        make(chan []byte, 256),
	}
}

// Emit queues an event for this connection. Sends to a closed or saturated
// connection are dropped, never a fault: an in-flight relay may legitimately
// target a connection that disconnected mid-flight.
func (c *Client) Emit(event string, data interface{}) {
	payload, err := encodeEvent(event, data)
	if err != nil {
		return
	}
	c.enqueue(payload)
}

func (c *Client) enqueue(payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
