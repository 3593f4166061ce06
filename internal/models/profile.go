package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile is the identity record mirrored in our store, one row per user.
type Profile struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Username     *string   `json:"username,omitempty" gorm:"uniqueIndex"`
	DisplayName  *string   `json:"display_name,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileCompact is the author shape embedded in enriched responses.
type ProfileCompact struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// ToCompact converts a Profile to its compact representation
func (p *Profile) ToCompact() ProfileCompact {
	return ProfileCompact{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=50"`
}

// SigninRequest defines the request body for local authentication
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the own profile
type UpdateProfileRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=2,max=30"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=50"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=300"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
