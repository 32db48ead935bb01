package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the public player identity attached to an auth user.
type Profile struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	DisplayName    string     `gorm:"size:255;not null" json:"display_name"`
	AvatarURL      *string    `gorm:"size:512" json:"avatar_url"`
	DefaultVenueID *uuid.UUID `gorm:"type:uuid" json:"default_venue"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// GuestPlayer is a placeholder player created by a user for people who have
// not signed up yet. It can later be linked to a real account.
type GuestPlayer struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	DisplayName    string         `gorm:"size:255;not null" json:"display_name"`
	LinkedPlayerID *uuid.UUID     `gorm:"type:uuid" json:"linked_player_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GuestPlayer) TableName() string {
	return "guest_players"
}

type UpdateProfileRequest struct {
	DisplayName    *string    `json:"display_name,omitempty"`
	AvatarURL      *string    `json:"avatar_url,omitempty"`
	DefaultVenueID *uuid.UUID `json:"default_venue,omitempty"`
}

type CreateGuestPlayerRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type LinkGuestPlayerRequest struct {
	RealPlayerID uuid.UUID `json:"real_player_id" binding:"required"`
}

// PlayerRatingResponse combines a profile with its current rating.
type PlayerRatingResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Mu          float64   `json:"mu"`
	Sigma       float64   `json:"sigma"`
	GamesPlayed int       `json:"games_played"`
}
