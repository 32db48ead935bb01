package models

import "github.com/google/uuid"

// PartnerProfile is the identity shown next to a recommendation entry.
type PartnerProfile struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
}

// CompatibilityEntry scores how well a pair plays together relative to the
// average of their individual ratings.
type CompatibilityEntry struct {
	Partner             PartnerProfile `json:"partner"`
	TeamRating          float64        `json:"team_rating"`
	AvgIndividualRating float64        `json:"avg_individual_rating"`
	CompatibilityScore  float64        `json:"compatibility_score"`
	GamesPlayedTogether int            `json:"games_played_together,omitempty"`
}

// RankedPlayer is one side of a team in the rankings.
type RankedPlayer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TeamRankingEntry is one row of the global team leaderboard.
type TeamRankingEntry struct {
	PlayerA     RankedPlayer `json:"player_a"`
	PlayerB     RankedPlayer `json:"player_b"`
	TeamRating  float64      `json:"team_rating"`
	GamesPlayed int          `json:"games_played"`
}
