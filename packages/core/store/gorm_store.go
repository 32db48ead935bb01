package store

import (
	"errors"

	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRatingStore is the Postgres-backed RatingStore.
type GormRatingStore struct {
	db *gorm.DB
}

func NewGormRatingStore(db *gorm.DB) *GormRatingStore {
	return &GormRatingStore{
		db: db,
	}
}

func (s *GormRatingStore) GetPlayerRating(playerID uuid.UUID) (*models.PlayerRating, error) {
	var rating models.PlayerRating

	result := s.db.Where("player_id = ?", playerID).First(&rating)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &rating, nil
}

func (s *GormRatingStore) UpsertPlayerRating(playerID uuid.UUID, mu, sigma float64, gamesPlayed int) (*models.PlayerRating, error) {
	rating := models.PlayerRating{
		PlayerID:    playerID,
		Mu:          mu,
		Sigma:       sigma,
		GamesPlayed: gamesPlayed,
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mu", "sigma", "games_played", "updated_at"}),
	}).Create(&rating)

	if result.Error != nil {
		return nil, result.Error
	}

	return &rating, nil
}

func (s *GormRatingStore) ListTopPlayers(limit int) ([]models.PlayerRating, error) {
	var ratings []models.PlayerRating

	result := s.db.Order("mu DESC").
		Limit(limit).
		Find(&ratings)

	if result.Error != nil {
		return nil, result.Error
	}

	return ratings, nil
}

func (s *GormRatingStore) GetTeamRating(playerA, playerB uuid.UUID) (*models.TeamRating, error) {
	a, b := models.CanonicalPair(playerA, playerB)

	var team models.TeamRating
	result := s.db.Where("player_a = ? AND player_b = ?", a, b).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &team, nil
}

func (s *GormRatingStore) UpsertTeamRating(playerA, playerB uuid.UUID, mu, sigma float64) (*models.TeamRating, error) {
	a, b := models.CanonicalPair(playerA, playerB)

	existing, err := s.GetTeamRating(a, b)
	if err != nil {
		return nil, err
	}

	gamesPlayed := 1
	if existing != nil {
		gamesPlayed = existing.GamesPlayed + 1
	}

	team := models.TeamRating{
		PlayerA:     a,
		PlayerB:     b,
		Mu:          mu,
		Sigma:       sigma,
		GamesPlayed: gamesPlayed,
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_a"}, {Name: "player_b"}},
		DoUpdates: clause.AssignmentColumns([]string{"mu", "sigma", "games_played", "updated_at"}),
	}).Create(&team)

	if result.Error != nil {
		return nil, result.Error
	}

	return &team, nil
}

func (s *GormRatingStore) ListTeamsForPlayer(playerID uuid.UUID) ([]models.TeamRating, error) {
	var teams []models.TeamRating

	result := s.db.Where("player_a = ? OR player_b = ?", playerID, playerID).
		Order("player_a ASC, player_b ASC").
		Find(&teams)

	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (s *GormRatingStore) ListTeamsAboveGamesThreshold(minGames int) ([]models.TeamRating, error) {
	var teams []models.TeamRating

	result := s.db.Where("games_played >= ?", minGames).
		Order("mu DESC").
		Find(&teams)

	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (s *GormRatingStore) ListTopTeams(limit int) ([]models.TeamRating, error) {
	var teams []models.TeamRating

	result := s.db.Order("mu DESC").
		Limit(limit).
		Find(&teams)

	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (s *GormRatingStore) AppendRatingHistory(entry models.RatingHistory) error {
	return s.db.Create(&entry).Error
}
