package handlers

import (
	"net/http"
	"strconv"
	"time"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetRecentMatches retrieves the N most recent matches
// @Summary Get recent matches
// @Description Get the N most recent matches ordered by play date (newest first)
// @Tags matches
// @Produce json
// @Param limit query int false "Number of matches to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/recent [get]
func (h *MatchHandler) GetRecentMatches(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid limit parameter",
		})
		return
	}

	// Cap the limit to prevent excessive queries
	if limit > 100 {
		limit = 100
	}

	matches, err := h.matchService.GetRecentMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve recent matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatches retrieves matches with pagination and filters
// @Summary Get matches with pagination and filters
// @Description Get matches with optional filters for player, venue, status, and date range
// @Tags matches
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Param player_id query string false "Filter by player ID (matches where the player is on either team)"
// @Param venue_id query string false "Filter by venue ID"
// @Param status query string false "Filter by match status" Enums(pending,confirmed,rejected,cancelled)
// @Param date_from query string false "Filter from date (YYYY-MM-DD format)"
// @Param date_to query string false "Filter to date (YYYY-MM-DD format)"
// @Success 200 {object} models.PaginatedMatchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	perPageStr := c.DefaultQuery("per_page", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}

	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page parameter"})
		return
	}

	// Limit per_page to maximum 100
	if perPage > 100 {
		perPage = 100
	}

	filters := services.MatchFilters{
		Page:    page,
		PerPage: perPage,
	}

	if playerIDStr := c.Query("player_id"); playerIDStr != "" {
		playerID, err := uuid.Parse(playerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player_id parameter"})
			return
		}
		filters.PlayerID = &playerID
	}

	if venueIDStr := c.Query("venue_id"); venueIDStr != "" {
		venueID, err := uuid.Parse(venueIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue_id parameter"})
			return
		}
		filters.VenueID = &venueID
	}

	if status := c.Query("status"); status != "" {
		validStatuses := map[string]bool{
			"pending":   true,
			"confirmed": true,
			"rejected":  true,
			"cancelled": true,
		}
		if !validStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status parameter"})
			return
		}
		filters.Status = &status
	}

	if dateFromStr := c.Query("date_from"); dateFromStr != "" {
		dateFrom, err := time.Parse("2006-01-02", dateFromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from format, expected YYYY-MM-DD"})
			return
		}
		filters.DateFrom = &dateFrom
	}

	if dateToStr := c.Query("date_to"); dateToStr != "" {
		dateTo, err := time.Parse("2006-01-02", dateToStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to format, expected YYYY-MM-DD"})
			return
		}
		filters.DateTo = &dateTo
	}

	response, err := h.matchService.GetMatches(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve matches",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetMatch retrieves a single match by ID
// @Summary Get a match
// @Description Get a single match by its ID
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.GetMatch(matchID)
	if err != nil {
		if err.Error() == "match not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve match"})
		return
	}

	c.JSON(http.StatusOK, match)
}

// CreateMatch records a new doubles match
// @Summary Create a match
// @Description Record a new doubles match in pending state; ratings are applied on confirmation
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match to create"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	match, err := h.matchService.CreateMatch(req, userID)
	if err != nil {
		switch err.Error() {
		case "venue not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		case services.ErrInvalidMatchComposition.Error():
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		}
		return
	}

	c.JSON(http.StatusCreated, match)
}

// UpdateMatchStatus confirms or rejects a pending match
// @Summary Update match status
// @Description Confirm or reject a pending match; confirming applies rating updates
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param status body models.UpdateMatchStatusRequest true "New status"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /matches/{id} [patch]
func (h *MatchHandler) UpdateMatchStatus(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatchStatus(matchID, req)
	if err != nil {
		switch err.Error() {
		case "match not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case "match is not pending":
			c.JSON(http.StatusConflict, gin.H{"error": "Match is not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update match status"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// RejectMatch rejects a pending match
// @Summary Reject a match
// @Description Reject a pending match; no ratings are applied
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /matches/{id}/reject [patch]
func (h *MatchHandler) RejectMatch(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.RejectMatch(matchID)
	if err != nil {
		switch err.Error() {
		case "match not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case "match is not pending":
			c.JSON(http.StatusConflict, gin.H{"error": "Match is not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject match"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// CancelMatch cancels a match
// @Summary Cancel a match
// @Description Cancel a match regardless of its current status (admin only)
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /matches/{id}/cancel [patch]
func (h *MatchHandler) CancelMatch(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.CancelMatch(matchID)
	if err != nil {
		if err.Error() == "match not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel match"})
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch deletes a match
// @Summary Delete a match
// @Description Soft-delete a match (admin only)
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	if err := h.matchService.DeleteMatch(matchID); err != nil {
		if err.Error() == "match not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete match"})
		return
	}

	c.Status(http.StatusNoContent)
}
