package services

import (
	"errors"
	"sort"

	"core/models"
	"core/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueService struct {
	db *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{
		db: db,
	}
}

func (s *VenueService) CreateVenue(req models.CreateVenueRequest, createdBy uuid.UUID) (*models.Venue, error) {
	venue := &models.Venue{
		ID:        uuid.New(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		CreatedBy: createdBy,
	}

	if err := s.db.Create(venue).Error; err != nil {
		return nil, err
	}

	return venue, nil
}

func (s *VenueService) GetVenue(venueID uuid.UUID) (*models.Venue, error) {
	var venue models.Venue

	result := s.db.First(&venue, "id = ?", venueID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New("venue not found")
		}
		return nil, result.Error
	}

	return &venue, nil
}

func (s *VenueService) UpdateVenue(venueID uuid.UUID, req models.UpdateVenueRequest) (*models.Venue, error) {
	venue, err := s.GetVenue(venueID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Latitude != nil && req.Longitude != nil {
		updates["latitude"] = *req.Latitude
		updates["longitude"] = *req.Longitude
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if len(updates) > 0 {
		if err := s.db.Model(venue).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return venue, nil
}

// FindNearbyVenues returns venues within radiusMeters of the point, closest
// first. Distances are computed in application code over plain lat/lng
// columns rather than with a geospatial index.
func (s *VenueService) FindNearbyVenues(latitude, longitude, radiusMeters float64) ([]models.NearbyVenue, error) {
	var venues []models.Venue
	if err := s.db.Find(&venues).Error; err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyVenue, 0)
	for _, venue := range venues {
		distance := utils.HaversineMeters(latitude, longitude, venue.Latitude, venue.Longitude)
		if distance <= radiusMeters {
			nearby = append(nearby, models.NearbyVenue{
				Venue:          venue,
				DistanceMeters: distance,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}
