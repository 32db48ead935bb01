package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetScore holds one set's points for both teams.
type SetScore struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// SetScores is stored as a JSONB column.
type SetScores []SetScore

// Value implements driver.Valuer for GORM
func (s SetScores) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for GORM
func (s *SetScores) Scan(value interface{}) error {
	if value == nil {
		*s = SetScores{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

type Match struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	VenueID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	Team1PlayerA uuid.UUID      `gorm:"type:uuid;not null" json:"team1_player_a"`
	Team1PlayerB uuid.UUID      `gorm:"type:uuid;not null" json:"team1_player_b"`
	Team2PlayerA uuid.UUID      `gorm:"type:uuid;not null" json:"team2_player_a"`
	Team2PlayerB uuid.UUID      `gorm:"type:uuid;not null" json:"team2_player_b"`
	Scores       SetScores      `gorm:"type:jsonb;not null" json:"scores"`
	Status       string         `gorm:"size:20;default:pending" json:"status"` // pending, confirmed, rejected, cancelled
	PlayedAt     time.Time      `gorm:"not null" json:"played_at"`
	ConfirmedAt  *time.Time     `json:"confirmed_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID;references:ID" json:"venue,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// Team1 returns team1's players in submission order.
func (m *Match) Team1() [2]uuid.UUID {
	return [2]uuid.UUID{m.Team1PlayerA, m.Team1PlayerB}
}

// Team2 returns team2's players in submission order.
func (m *Match) Team2() [2]uuid.UUID {
	return [2]uuid.UUID{m.Team2PlayerA, m.Team2PlayerB}
}

// PlayerIDs returns all four participants.
func (m *Match) PlayerIDs() [4]uuid.UUID {
	return [4]uuid.UUID{m.Team1PlayerA, m.Team1PlayerB, m.Team2PlayerA, m.Team2PlayerB}
}

type PaginatedMatchResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type CreateMatchRequest struct {
	VenueID      uuid.UUID   `json:"venue_id" binding:"required"`
	Team1Players []uuid.UUID `json:"team1_players" binding:"required,len=2"`
	Team2Players []uuid.UUID `json:"team2_players" binding:"required,len=2"`
	Scores       []SetScore  `json:"scores" binding:"required,min=1"`
	PlayedAt     time.Time   `json:"played_at" binding:"required"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed rejected cancelled"`
}
