package services

import (
	"errors"

	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialService struct {
	db       *gorm.DB
	profiles ProfileLookup
}

func NewSocialService(db *gorm.DB, profiles ProfileLookup) *SocialService {
	return &SocialService{
		db:       db,
		profiles: profiles,
	}
}

// Follow records that follower follows followee. Following yourself is an
// error; following someone twice is a no-op.
func (s *SocialService) Follow(followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return errors.New("cannot follow yourself")
	}

	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}

	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
}

func (s *SocialService) Unfollow(followerID, followeeID uuid.UUID) error {
	return s.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

// GetFollowers lists the profiles of everyone following the player. Followers
// whose profile no longer resolves are skipped.
func (s *SocialService) GetFollowers(playerID uuid.UUID) ([]models.Profile, error) {
	var follows []models.Follow
	if err := s.db.Where("followee_id = ?", playerID).Find(&follows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowerID)
	}

	return s.resolveProfiles(ids)
}

func (s *SocialService) GetFollowing(playerID uuid.UUID) ([]models.Profile, error) {
	var follows []models.Follow
	if err := s.db.Where("follower_id = ?", playerID).Find(&follows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FolloweeID)
	}

	return s.resolveProfiles(ids)
}

// GetMutuals lists the players the given player follows who follow them back.
func (s *SocialService) GetMutuals(playerID uuid.UUID) ([]models.Profile, error) {
	var follows []models.Follow
	if err := s.db.Where("follower_id = ?", playerID).Find(&follows).Error; err != nil {
		return nil, err
	}

	if len(follows) == 0 {
		return []models.Profile{}, nil
	}

	followeeIDs := make([]uuid.UUID, 0, len(follows))
	for _, follow := range follows {
		followeeIDs = append(followeeIDs, follow.FolloweeID)
	}

	var back []models.Follow
	if err := s.db.
		Where("followee_id = ? AND follower_id IN ?", playerID, followeeIDs).
		Find(&back).Error; err != nil {
		return nil, err
	}

	mutualIDs := make([]uuid.UUID, 0, len(back))
	for _, follow := range back {
		mutualIDs = append(mutualIDs, follow.FollowerID)
	}

	return s.resolveProfiles(mutualIDs)
}

func (s *SocialService) resolveProfiles(ids []uuid.UUID) ([]models.Profile, error) {
	if len(ids) == 0 {
		return []models.Profile{}, nil
	}

	byID, err := s.profiles.GetProfilesByIDs(ids)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(ids))
	for _, id := range ids {
		if profile, ok := byID[id]; ok {
			profiles = append(profiles, profile)
		}
	}

	return profiles, nil
}
