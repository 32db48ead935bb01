package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	venueService *services.VenueService
	matchService *services.MatchService
}

func NewVenueHandler(venueService *services.VenueService, matchService *services.MatchService) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
		matchService: matchService,
	}
}

// CreateVenue registers a new venue
// @Summary Create a venue
// @Description Register a new badminton venue with its coordinates
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body models.CreateVenueRequest true "Venue to create"
// @Success 201 {object} models.Venue
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venueService.CreateVenue(req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// GetVenue retrieves a venue by ID
// @Summary Get a venue
// @Description Get a single venue by its ID
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} models.Venue
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	venue, err := h.venueService.GetVenue(venueID)
	if err != nil {
		if err.Error() == "venue not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve venue"})
		return
	}

	c.JSON(http.StatusOK, venue)
}

// UpdateVenue updates a venue
// @Summary Update a venue
// @Description Update a venue's name, coordinates or address
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param venue body models.UpdateVenueRequest true "Fields to update"
// @Success 200 {object} models.Venue
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /venues/{id} [patch]
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	var req models.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venueService.UpdateVenue(venueID, req)
	if err != nil {
		if err.Error() == "venue not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update venue"})
		return
	}

	c.JSON(http.StatusOK, venue)
}

// FindNearbyVenues searches venues around a point
// @Summary Find nearby venues
// @Description Find venues within a radius of a coordinate, closest first
// @Tags venues
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Search radius in meters (default: 5000, max: 50000)"
// @Success 200 {array} models.NearbyVenue
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /venues/nearby [get]
func (h *VenueHandler) FindNearbyVenues(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lat parameter"})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lng parameter"})
		return
	}

	radiusStr := c.DefaultQuery("radius", "5000")
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius parameter"})
		return
	}

	if radius > 50000 {
		radius = 50000
	}

	venues, err := h.venueService.FindNearbyVenues(lat, lng, radius)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search venues"})
		return
	}

	c.JSON(http.StatusOK, venues)
}

// GetVenueMatches retrieves all matches played at a venue
// @Summary Get a venue's matches
// @Description Get all matches recorded at the venue, newest first
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /venues/{id}/matches [get]
func (h *VenueHandler) GetVenueMatches(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	matches, err := h.matchService.GetVenueMatches(venueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve venue matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}
