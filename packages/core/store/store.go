package store

import (
	"core/models"

	"github.com/google/uuid"
)

// RatingStore persists player and team skill beliefs. A missing rating is a
// normal case, reported as a nil record with a nil error, never as an error
// value. Every write is an independent create-or-replace by key; no
// multi-record transaction is assumed.
type RatingStore interface {
	// GetPlayerRating returns nil, nil when the player has no rating yet.
	GetPlayerRating(playerID uuid.UUID) (*models.PlayerRating, error)
	UpsertPlayerRating(playerID uuid.UUID, mu, sigma float64, gamesPlayed int) (*models.PlayerRating, error)
	ListTopPlayers(limit int) ([]models.PlayerRating, error)

	// GetTeamRating returns nil, nil when the pair has never played together.
	// Both team methods canonicalize the pair order themselves.
	GetTeamRating(playerA, playerB uuid.UUID) (*models.TeamRating, error)
	// UpsertTeamRating replaces the pair's mu/sigma and increments its
	// games_played counter by one.
	UpsertTeamRating(playerA, playerB uuid.UUID, mu, sigma float64) (*models.TeamRating, error)

	ListTeamsForPlayer(playerID uuid.UUID) ([]models.TeamRating, error)
	ListTeamsAboveGamesThreshold(minGames int) ([]models.TeamRating, error)
	ListTopTeams(limit int) ([]models.TeamRating, error)

	AppendRatingHistory(entry models.RatingHistory) error
}
