package models

import "time"

// Comment on an inspiration. Append-only from the client's perspective.
type Comment struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string    `json:"user_id" gorm:"type:uuid;index"`
	InspirationID string    `json:"inspiration_id" gorm:"type:uuid;index"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// EnrichedComment includes the author's compact profile
type EnrichedComment struct {
	Comment
	Author ProfileCompact `json:"author"`
}
