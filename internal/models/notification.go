package models

import "time"

// Notification types fanned out to a post owner by the interaction service.
const (
	NotificationTypeResonate = "resonate"
	NotificationTypeComment  = "comment"
	NotificationTypeBookmark = "bookmark"
)

// Notification is a fan-out record for the owner of an inspiration.
// UserID is the recipient; ActorID is who triggered it.
type Notification struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string    `json:"user_id" gorm:"type:uuid;index"`
	Type          string    `json:"type" gorm:"size:30;index"`
	ActorID       string    `json:"actor_id" gorm:"type:uuid;index"`
	InspirationID string    `json:"inspiration_id" gorm:"type:uuid"`
	IsRead        bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}

// EnrichedNotification includes actor info
type EnrichedNotification struct {
	Notification
	Actor ProfileCompact `json:"actor"`
}
