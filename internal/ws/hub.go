// internal/ws/hub.go
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Inline file payloads ride the socket, so the read limit has to clear
	// a 5 MiB file plus base64 and envelope overhead.
	maxMessageSize = 8 << 20

	authTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub owns all live connections of the process: it admits them through the
// authenticator, pumps frames, dispatches inbound events to the relay and
// reaps connections on close.
type Hub struct {
	auth  *Authenticator
	relay *Relay

	clients   map[*Client]bool
	clientsMu sync.RWMutex

	logger *zap.Logger
}

func NewHub(auth *Authenticator, relay *Relay, logger *zap.Logger) *Hub {
	hub := &Hub{
		auth:    auth,
		relay:   relay,
		clients: make(map[*Client]bool),
		logger:  logger,
	}
	relay.broadcaster = hub
	return hub
}

// Broadcast sends an event to every live connection, including ones that have
// not yet signalled online.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := encodeEvent(event, data)
	if err != nil {
		h.logger.Error("failed to encode broadcast", zap.String("event", event), zap.Error(err))
		return
	}

	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	for c := range h.clients {
		c.enqueue(payload)
	}
}

// HandleWebSocket authenticates the handshake (token, userId and
// optional username/displayName in the query) and upgrades the connection.
// Rejection happens before the upgrade; a rejected connection never touches
// the presence registry.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	userID := c.Query("userId")
	username := c.Query("username")
	displayName := c.Query("displayName")

	ctx, cancel := context.WithTimeout(c.Request.Context(), authTimeout)
	defer cancel()

	identity, err := h.auth.Authenticate(ctx, token, userID, username, displayName)
	if err != nil {
		h.logger.Warn("handshake rejected", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	client := newClient(conn, uuid.NewString(), identity)

	h.clientsMu.Lock()
	h.clients[client] = true
	h.clientsMu.Unlock()

	wsConnectionsTotal.Inc()
	wsActiveConnections.Inc()

	h.logger.Info("connection admitted",
		zap.String("userId", client.UserID),
		zap.String("socketId", client.SocketID))

	go h.writePump(client)
	go h.readPump(client)
}

func (h *Hub) readPump(client *Client) {
	defer func() {
		h.clientsMu.Lock()
		delete(h.clients, client)
		h.clientsMu.Unlock()

		h.relay.HandleDisconnect(context.Background(), client)

		client.close()
		client.conn.Close()
		wsActiveConnections.Dec()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("websocket error", zap.String("userId", client.UserID), zap.Error(err))
			}
			break
		}

		h.dispatch(client, message)
	}
}

func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// dispatch routes one inbound frame. Every event is handled inside its own
// failure boundary: a fault in one handler emits an error to that sender only
// and never terminates the connection or the process.
func (h *Hub) dispatch(client *Client, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("recovered from handler panic",
				zap.Any("panic", r),
				zap.String("userId", client.UserID))
			client.Emit(EventError, ErrorPayload{Message: "Internal error"})
		}
	}()

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.logger.Warn("failed to parse frame", zap.String("userId", client.UserID), zap.Error(err))
		client.Emit(EventError, ErrorPayload{Message: "Invalid event"})
		return
	}

	ctx := context.Background()

	switch env.Event {
	case EventOnline:
		h.relay.HandleOnline(ctx, client)
	case EventSendMessage:
		h.relay.HandleSendMessage(client, env.Data)
	case EventTyping:
		h.relay.HandleTyping(env.Data)
	case EventStopTyping:
		h.relay.HandleStopTyping(env.Data)
	case EventCreateGroup:
		h.relay.HandleCreateGroup(ctx, client, env.Data)
	case EventJoinGroup:
		h.relay.HandleJoinGroup(client, env.Data)
	case EventSendFile:
		h.relay.HandleSendFile(client, env.Data)
	default:
		h.logger.Warn("unknown event", zap.String("event", env.Event), zap.String("userId", client.UserID))
	}
}
