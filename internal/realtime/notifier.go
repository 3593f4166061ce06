package realtime

import (
	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"go.uber.org/zap"
)

// HubNotifier implements services.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyNotification pushes a freshly inserted notification to its
// recipient's stream.
func (n *HubNotifier) NotifyNotification(notification *models.Notification) {
	evt, err := NewEvent(EventTypeNotificationNew, notification)
	if err != nil {
		n.hub.logger.Error("realtime notifier marshal error", zap.Error(err))
		return
	}
	n.hub.SendToUser(notification.UserID, evt)
}
