package services

import (
	"errors"
	"time"

	"core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	db            *gorm.DB
	ratingService *RatingService
}

func NewMatchService(db *gorm.DB, ratingService *RatingService) *MatchService {
	return &MatchService{
		db:            db,
		ratingService: ratingService,
	}
}

func (s *MatchService) GetRecentMatches(limit int) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Order("played_at DESC").
		Limit(limit).
		Preload("Venue").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

type MatchFilters struct {
	PlayerID *uuid.UUID `json:"player_id,omitempty"`
	VenueID  *uuid.UUID `json:"venue_id,omitempty"`
	Status   *string    `json:"status,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
	Page     int        `json:"page"`
	PerPage  int        `json:"per_page"`
}

func (s *MatchService) GetMatches(filters MatchFilters) (*models.PaginatedMatchResponse, error) {
	var matches []models.Match
	var total int64

	query := s.db.Model(&models.Match{})

	if filters.PlayerID != nil {
		id := *filters.PlayerID
		query = query.Where(
			"team1_player_a = ? OR team1_player_b = ? OR team2_player_a = ? OR team2_player_b = ?",
			id, id, id, id,
		)
	}

	if filters.VenueID != nil {
		query = query.Where("venue_id = ?", *filters.VenueID)
	}

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	if filters.DateFrom != nil {
		query = query.Where("played_at >= ?", *filters.DateFrom)
	}

	if filters.DateTo != nil {
		dateTo := filters.DateTo.Add(24 * time.Hour)
		query = query.Where("played_at < ?", dateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filters.Page - 1) * filters.PerPage

	result := query.
		Offset(offset).
		Limit(filters.PerPage).
		Order("played_at DESC").
		Preload("Venue").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	totalPages := int((total + int64(filters.PerPage) - 1) / int64(filters.PerPage))

	return &models.PaginatedMatchResponse{
		Data:       matches,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *MatchService) GetMatch(matchID uuid.UUID) (*models.Match, error) {
	var match models.Match

	result := s.db.Preload("Venue").First(&match, "id = ?", matchID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("match not found")
		}
		return nil, result.Error
	}

	return &match, nil
}

func (s *MatchService) GetPlayerMatches(playerID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Where(
		"team1_player_a = ? OR team1_player_b = ? OR team2_player_a = ? OR team2_player_b = ?",
		playerID, playerID, playerID, playerID,
	).
		Order("played_at DESC").
		Preload("Venue").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (s *MatchService) GetVenueMatches(venueID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Where("venue_id = ?", venueID).
		Order("played_at DESC").
		Preload("Venue").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (s *MatchService) CreateMatch(req models.CreateMatchRequest, createdBy uuid.UUID) (*models.Match, error) {
	// Validate that the venue exists
	var venue models.Venue
	if err := s.db.First(&venue, "id = ?", req.VenueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("venue not found")
		}
		return nil, err
	}

	// Validate team composition before anything is written
	outcome := MatchOutcome{
		Team1Players: [2]uuid.UUID{req.Team1Players[0], req.Team1Players[1]},
		Team2Players: [2]uuid.UUID{req.Team2Players[0], req.Team2Players[1]},
		Sets:         req.Scores,
	}
	if err := validateComposition(outcome); err != nil {
		return nil, err
	}

	match := models.Match{
		ID:           uuid.New(),
		VenueID:      req.VenueID,
		CreatedBy:    createdBy,
		Team1PlayerA: req.Team1Players[0],
		Team1PlayerB: req.Team1Players[1],
		Team2PlayerA: req.Team2Players[0],
		Team2PlayerB: req.Team2Players[1],
		Scores:       models.SetScores(req.Scores),
		Status:       "pending",
		PlayedAt:     req.PlayedAt,
	}

	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Venue").First(&match, "id = ?", match.ID).Error; err != nil {
		return nil, err
	}

	return &match, nil
}

func (s *MatchService) UpdateMatchStatus(matchID uuid.UUID, req models.UpdateMatchStatusRequest) (*models.Match, error) {
	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("match not found")
		}
		return nil, err
	}

	if match.Status != "pending" {
		return nil, errors.New("match is not pending")
	}

	now := time.Now()
	match.Status = req.Status
	if req.Status == "confirmed" {
		match.ConfirmedAt = &now
	}

	if err := s.db.Save(&match).Error; err != nil {
		return nil, err
	}

	// Ratings are applied after the status write. Each rating upsert is its
	// own durable operation; a failure here leaves the match confirmed with
	// ratings partially applied, and the error is surfaced to the caller.
	if match.Status == "confirmed" {
		outcome := MatchOutcome{
			MatchID:      match.ID,
			Team1Players: match.Team1(),
			Team2Players: match.Team2(),
			Sets:         []models.SetScore(match.Scores),
		}
		if err := s.ratingService.ApplyMatchResult(outcome); err != nil {
			return nil, err
		}
	}

	if err := s.db.Preload("Venue").First(&match, "id = ?", match.ID).Error; err != nil {
		return nil, err
	}

	return &match, nil
}

func (s *MatchService) ConfirmMatch(matchID uuid.UUID) (*models.Match, error) {
	return s.UpdateMatchStatus(matchID, models.UpdateMatchStatusRequest{Status: "confirmed"})
}

func (s *MatchService) RejectMatch(matchID uuid.UUID) (*models.Match, error) {
	return s.UpdateMatchStatus(matchID, models.UpdateMatchStatusRequest{Status: "rejected"})
}

// DeleteMatch soft-deletes a match. Ratings already applied from a confirmed
// match are not rolled back.
func (s *MatchService) DeleteMatch(matchID uuid.UUID) error {
	result := s.db.Delete(&models.Match{}, "id = ?", matchID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("match not found")
	}
	return nil
}

func (s *MatchService) CancelMatch(matchID uuid.UUID) (*models.Match, error) {
	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("match not found")
		}
		return nil, err
	}

	match.Status = "cancelled"
	if err := s.db.Save(&match).Error; err != nil {
		return nil, err
	}

	return &match, nil
}
