package realtime

import (
	"encoding/json"
	"time"
)

// Event types - Server → Client
const (
	EventTypeNotificationNew = "notification.new"
	EventTypePong            = "pong"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
