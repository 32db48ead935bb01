package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingHistory records one player's rating change from one match.
type RatingHistory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"player_id"`
	MatchID     uuid.UUID `gorm:"type:uuid;not null;index" json:"match_id"`
	MuBefore    float64   `gorm:"not null" json:"mu_before"`
	MuAfter     float64   `gorm:"not null" json:"mu_after"`
	SigmaBefore float64   `gorm:"not null" json:"sigma_before"`
	SigmaAfter  float64   `gorm:"not null" json:"sigma_after"`
	Won         bool      `gorm:"not null" json:"won"`
	CreatedAt   time.Time `json:"created_at"`
}

func (RatingHistory) TableName() string {
	return "rating_history"
}
