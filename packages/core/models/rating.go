package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlayerRating is the Gaussian skill belief for a single player.
type PlayerRating struct {
	PlayerID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"player_id"`
	Mu          float64   `gorm:"not null" json:"mu"`
	Sigma       float64   `gorm:"not null" json:"sigma"`
	GamesPlayed int       `gorm:"not null;default:0" json:"games_played"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PlayerRating) TableName() string {
	return "player_ratings"
}

// TeamRating is the joint skill belief for an unordered pair of players.
// Rows are always stored under the canonical key (PlayerA < PlayerB) so the
// same pairing maps to one record regardless of submission order.
type TeamRating struct {
	PlayerA     uuid.UUID `gorm:"type:uuid;primaryKey" json:"player_a"`
	PlayerB     uuid.UUID `gorm:"type:uuid;primaryKey" json:"player_b"`
	Mu          float64   `gorm:"not null" json:"mu"`
	Sigma       float64   `gorm:"not null" json:"sigma"`
	GamesPlayed int       `gorm:"not null;default:0" json:"games_played"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TeamRating) TableName() string {
	return "team_ratings"
}

// PartnerOf returns the other member of the pair.
func (t *TeamRating) PartnerOf(playerID uuid.UUID) (uuid.UUID, bool) {
	switch playerID {
	case t.PlayerA:
		return t.PlayerB, true
	case t.PlayerB:
		return t.PlayerA, true
	}
	return uuid.Nil, false
}

// CanonicalPair orders two player ids by their string representation.
// CanonicalPair(a, b) == CanonicalPair(b, a) for all pairs.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) > 0 {
		return b, a
	}
	return a, b
}
