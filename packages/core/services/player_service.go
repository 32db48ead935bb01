package services

import (
	"errors"

	"core/models"
	"core/store"
	"core/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerService struct {
	db    *gorm.DB
	store store.RatingStore
}

func NewPlayerService(db *gorm.DB, ratingStore store.RatingStore) *PlayerService {
	return &PlayerService{
		db:    db,
		store: ratingStore,
	}
}

func (s *PlayerService) CreateProfile(userID uuid.UUID, displayName string) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:      userID,
		DisplayName: displayName,
	}

	result := s.db.Create(profile)
	if result.Error != nil {
		return nil, result.Error
	}

	return profile, nil
}

func (s *PlayerService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile

	result := s.db.First(&profile, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("profile not found")
		}
		return nil, result.Error
	}

	return &profile, nil
}

func (s *PlayerService) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.DefaultVenueID != nil {
		updates["default_venue_id"] = *req.DefaultVenueID
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// GetProfilesByIDs implements the ProfileLookup used by recommendations.
func (s *PlayerService) GetProfilesByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]models.Profile{}, nil
	}

	var profiles []models.Profile
	if err := s.db.Where("user_id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Profile, len(profiles))
	for _, profile := range profiles {
		byID[profile.UserID] = profile
	}

	return byID, nil
}

// GetPlayerRating returns the player's current rating combined with their
// profile, defaulting to the unrated prior when no rating exists yet.
func (s *PlayerService) GetPlayerRating(playerID uuid.UUID) (*models.PlayerRatingResponse, error) {
	profile, err := s.GetProfile(playerID)
	if err != nil {
		return nil, err
	}

	rating, err := s.store.GetPlayerRating(playerID)
	if err != nil {
		return nil, err
	}

	response := &models.PlayerRatingResponse{
		UserID:      playerID,
		DisplayName: profile.DisplayName,
		Mu:          utils.DefaultMu,
		Sigma:       utils.DefaultSigma,
		GamesPlayed: 0,
	}

	if rating != nil {
		response.Mu = rating.Mu
		response.Sigma = rating.Sigma
		response.GamesPlayed = rating.GamesPlayed
	}

	return response, nil
}

// GetTopPlayers ranks players by mean skill, annotated with display names.
func (s *PlayerService) GetTopPlayers(limit int) ([]models.PlayerRatingResponse, error) {
	ratings, err := s.store.ListTopPlayers(limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(ratings))
	for _, rating := range ratings {
		ids = append(ids, rating.PlayerID)
	}

	profiles, err := s.GetProfilesByIDs(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PlayerRatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		displayName := "Unknown"
		if profile, ok := profiles[rating.PlayerID]; ok {
			displayName = profile.DisplayName
		}
		responses = append(responses, models.PlayerRatingResponse{
			UserID:      rating.PlayerID,
			DisplayName: displayName,
			Mu:          rating.Mu,
			Sigma:       rating.Sigma,
			GamesPlayed: rating.GamesPlayed,
		})
	}

	return responses, nil
}

func (s *PlayerService) GetRatingHistory(playerID uuid.UUID) ([]models.RatingHistory, error) {
	var history []models.RatingHistory

	result := s.db.Where("player_id = ?", playerID).
		Order("id ASC").
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}

// GetRecentRatingChanges returns the latest rating updates across all players.
func (s *PlayerService) GetRecentRatingChanges(limit int) ([]models.RatingHistory, error) {
	var history []models.RatingHistory

	result := s.db.Order("id DESC").
		Limit(limit).
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}

func (s *PlayerService) CreateGuestPlayer(ownerID uuid.UUID, displayName string) (*models.GuestPlayer, error) {
	guest := &models.GuestPlayer{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		DisplayName: displayName,
	}

	if err := s.db.Create(guest).Error; err != nil {
		return nil, err
	}

	return guest, nil
}

// LinkGuestPlayer attaches a guest placeholder to a real player account.
func (s *PlayerService) LinkGuestPlayer(guestID, realPlayerID uuid.UUID) (*models.GuestPlayer, error) {
	var guest models.GuestPlayer
	if err := s.db.First(&guest, "id = ?", guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("guest player not found")
		}
		return nil, err
	}

	if guest.LinkedPlayerID != nil {
		return nil, errors.New("guest player is already linked")
	}

	if _, err := s.GetProfile(realPlayerID); err != nil {
		return nil, errors.New("real player not found")
	}

	guest.LinkedPlayerID = &realPlayerID
	if err := s.db.Save(&guest).Error; err != nil {
		return nil, err
	}

	return &guest, nil
}
