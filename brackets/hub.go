package brackets

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	MessageStandingsUpdated = "STANDINGS_UPDATED"
)

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	IsClosed bool
	Mu       sync.Mutex
}

type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub fans standings updates out to every connected websocket client.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.logger.Info("websocket client registered", slog.Int("clients", len(h.clients)))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				client.Mu.Lock()
				if !client.IsClosed {
					close(client.Send)
					client.IsClosed = true
				}
				client.Mu.Unlock()
				delete(h.clients, client)
				h.logger.Info("websocket client unregistered", slog.Int("clients", len(h.clients)))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				client.Mu.Lock()
				if client.IsClosed {
					client.Mu.Unlock()
					continue
				}
				select {
				case client.Send <- message:
				default:
					h.logger.Warn("websocket client send buffer full, dropping message")
				}
				client.Mu.Unlock()
			}
			h.mu.RUnlock()

		case <-h.done:
			return
		}
	}
}

// Stop ends Run. It must be called at most once.
func (h *Hub) Stop() {
	close(h.done)
}

// ClientCount reports the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues a typed message for every client. It never blocks the caller:
// when the queue is full the message is dropped and logged.
func (h *Hub) Publish(messageType string, payload interface{}) {
	messageBytes, err := json.Marshal(WebSocketMessage{Type: messageType, Payload: payload})
	if err != nil {
		h.logger.Error("failed to marshal websocket message", slog.String("type", messageType), slog.Any("error", err))
		return
	}

	select {
	case h.broadcast <- messageBytes:
	default:
		h.logger.Warn("websocket broadcast queue full, dropping message", slog.String("type", messageType))
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		// Clients only listen; anything they send is discarded.
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("websocket closed unexpectedly", slog.Any("error", err))
			}
			break
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Warn("failed to write websocket message", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
