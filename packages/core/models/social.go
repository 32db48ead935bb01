package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the social graph.
type Follow struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

type FollowRequest struct {
	FolloweeID uuid.UUID `json:"followee_id" binding:"required"`
}
