package services

import (
	"core/models"
	"log"
	"time"

	"gorm.io/gorm"
)

type AutoValidationService struct {
	db           *gorm.DB
	matchService *MatchService
}

func NewAutoValidationService(db *gorm.DB, matchService *MatchService) *AutoValidationService {
	return &AutoValidationService{
		db:           db,
		matchService: matchService,
	}
}

// ValidateExpiredMatches confirms all pending matches older than 24 hours.
func (s *AutoValidationService) ValidateExpiredMatches() error {
	cutoffTime := time.Now().Add(-24 * time.Hour)

	var expiredMatches []models.Match
	result := s.db.Where("status = ? AND created_at < ?", "pending", cutoffTime).Find(&expiredMatches)

	if result.Error != nil {
		log.Printf("Error finding expired matches: %v", result.Error)
		return result.Error
	}

	if len(expiredMatches) == 0 {
		log.Println("No expired matches found")
		return nil
	}

	log.Printf("Found %d expired matches to validate", len(expiredMatches))

	for _, match := range expiredMatches {
		log.Printf("Auto-confirming match %s (created at %v)", match.ID, match.CreatedAt)

		_, err := s.matchService.ConfirmMatch(match.ID)
		if err != nil {
			log.Printf("Error auto-confirming match %s: %v", match.ID, err)
			// Continue with other matches even if one fails
			continue
		}

		log.Printf("Successfully auto-confirmed match %s", match.ID)
	}

	return nil
}

// GetExpiredMatchesCount returns the number of pending matches older than 24 hours
func (s *AutoValidationService) GetExpiredMatchesCount() (int64, error) {
	cutoffTime := time.Now().Add(-24 * time.Hour)

	var count int64
	result := s.db.Model(&models.Match{}).Where("status = ? AND created_at < ?", "pending", cutoffTime).Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
