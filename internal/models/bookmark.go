package models

import "time"

// Bookmark is a "save for later" on an inspiration. Same shape and unique
// key discipline as Resonate, kept in its own table.
type Bookmark struct {
	ID            string       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string       `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_user_inspiration_bookmark"`
	InspirationID string       `json:"inspiration_id" gorm:"type:uuid;index;uniqueIndex:idx_user_inspiration_bookmark"`
	CreatedAt     time.Time    `json:"created_at"`
	Inspiration   *Inspiration `json:"inspiration,omitempty" gorm:"foreignKey:InspirationID"`
}
