package models

import "time"

// Resonate is a "like" on an inspiration. The composite unique index backs
// the atomic upsert-or-delete toggle, so the same user can never hold two
// rows for the same inspiration.
type Resonate struct {
	ID            string       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string       `json:"user_id" gorm:"type:uuid;index;uniqueIndex:idx_user_inspiration_resonate"`
	InspirationID string       `json:"inspiration_id" gorm:"type:uuid;index;uniqueIndex:idx_user_inspiration_resonate"`
	CreatedAt     time.Time    `json:"created_at"`
	Inspiration   *Inspiration `json:"inspiration,omitempty" gorm:"foreignKey:InspirationID"`
}
