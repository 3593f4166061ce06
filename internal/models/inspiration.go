package models

import (
	"time"

	"github.com/lib/pq"
)

// Inspiration is a short personal reflection, the core content unit.
// Tags live in a text[] column so the store can do set-overlap filtering.
type Inspiration struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string         `json:"user_id" gorm:"type:uuid;index"`
	Content   string         `json:"content"`
	Context   *string        `json:"context,omitempty"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	IsPublic  bool           `json:"is_public" gorm:"default:true;index"`
	ImageURL  *string        `json:"image_url,omitempty"`
	LinkURL   *string        `json:"link_url,omitempty"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateInspirationRequest defines the request body for creating an inspiration
type CreateInspirationRequest struct {
	Content  string   `json:"content" validate:"required,min=1,max=1000"`
	Context  *string  `json:"context,omitempty" validate:"omitempty,max=500"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,max=5,dive,min=1,max=20"`
	IsPublic *bool    `json:"is_public,omitempty"`
	ImageURL *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL  *string  `json:"link_url,omitempty" validate:"omitempty,url"`
}

// UpdateInspirationRequest defines the request body for editing an inspiration
type UpdateInspirationRequest struct {
	Content  *string  `json:"content,omitempty" validate:"omitempty,min=1,max=1000"`
	Context  *string  `json:"context,omitempty" validate:"omitempty,max=500"`
	Tags     []string `json:"tags,omitempty" validate:"omitempty,max=5,dive,min=1,max=20"`
	IsPublic *bool    `json:"is_public,omitempty"`
}

// EnrichedInspiration is an inspiration with its author resolved to a single
// profile and interaction counts attached.
type EnrichedInspiration struct {
	Inspiration
	Author        ProfileCompact `json:"author"`
	ResonateCount int64          `json:"resonate_count"`
	IsResonated   bool           `json:"is_resonated,omitempty"`
	IsBookmarked  bool           `json:"is_bookmarked,omitempty"`
}
