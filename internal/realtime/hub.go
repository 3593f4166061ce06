package realtime

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Hub manages all active WebSocket clients, keyed by user id, and routes
// server→client events. The notification stream is strictly per-recipient;
// there is no cross-user broadcast.
type Hub struct {
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	direct     chan *directMsg

	logger *zap.Logger
}

type directMsg struct {
	userID string
	data   []byte
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		direct:     make(chan *directMsg, 256),
		logger:     logger,
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if existing, ok := h.clients[client.userID]; ok {
				close(existing.send)
			}
			h.clients[client.userID] = client
			h.logger.Info("realtime client connected",
				zap.String("user_id", client.userID), zap.Int("total", len(h.clients)))

		case client := <-h.unregister:
			if current, ok := h.clients[client.userID]; ok && current == client {
				delete(h.clients, client.userID)
				close(client.send)
				h.logger.Info("realtime client disconnected",
					zap.String("user_id", client.userID), zap.Int("total", len(h.clients)))
			}

		case msg := <-h.direct:
			client, ok := h.clients[msg.userID]
			if !ok {
				continue
			}
			select {
			case client.send <- msg.data:
			default:
				// Client buffer full - disconnect
				delete(h.clients, msg.userID)
				close(client.send)
			}
		}
	}
}

// SendToUser delivers an event to a specific user's stream, if connected.
func (h *Hub) SendToUser(userID string, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("realtime hub marshal error", zap.Error(err))
		return
	}
	h.direct <- &directMsg{userID: userID, data: data}
}
