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

type PlayerHandler struct {
	playerService *services.PlayerService
	matchService  *services.MatchService
}

func NewPlayerHandler(playerService *services.PlayerService, matchService *services.MatchService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		matchService:  matchService,
	}
}

// GetProfile retrieves a player's profile
// @Summary Get a player profile
// @Description Get a player's public profile by ID
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetProfile(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	profile, err := h.playerService.GetProfile(playerID)
	if err != nil {
		if err.Error() == "profile not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the authenticated player's profile
// @Summary Update own profile
// @Description Update display name, avatar or default venue of the authenticated player
// @Tags players
// @Accept json
// @Produce json
// @Param profile body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /players/me [patch]
func (h *PlayerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.playerService.UpdateProfile(userID, req)
	if err != nil {
		if err.Error() == "profile not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetPlayerRating retrieves a player's current skill rating
// @Summary Get a player's rating
// @Description Get a player's current skill rating; unrated players get the default prior
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.PlayerRatingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id}/rating [get]
func (h *PlayerHandler) GetPlayerRating(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	rating, err := h.playerService.GetPlayerRating(playerID)
	if err != nil {
		if err.Error() == "profile not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetTopPlayers retrieves the player leaderboard
// @Summary Get top players
// @Description Get players ranked by mean skill, best first
// @Tags players
// @Produce json
// @Param limit query int false "Number of players to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.PlayerRatingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/top [get]
func (h *PlayerHandler) GetTopPlayers(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	if limit > 100 {
		limit = 100
	}

	players, err := h.playerService.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve top players"})
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetRatingHistory retrieves a player's rating change history
// @Summary Get a player's rating history
// @Description Get the chronological list of rating changes for a player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.RatingHistory
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/rating-history [get]
func (h *PlayerHandler) GetRatingHistory(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	history, err := h.playerService.GetRatingHistory(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rating history"})
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetPlayerMatches retrieves all matches a player took part in
// @Summary Get a player's matches
// @Description Get all matches where the player was on either team
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/matches [get]
func (h *PlayerHandler) GetPlayerMatches(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	matches, err := h.matchService.GetPlayerMatches(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve player matches"})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateGuestPlayer registers a guest placeholder player
// @Summary Create a guest player
// @Description Create a guest placeholder owned by the authenticated player
// @Tags players
// @Accept json
// @Produce json
// @Param guest body models.CreateGuestPlayerRequest true "Guest player to create"
// @Success 201 {object} models.GuestPlayer
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /players/guests [post]
func (h *PlayerHandler) CreateGuestPlayer(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateGuestPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.playerService.CreateGuestPlayer(userID, req.DisplayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest player"})
		return
	}

	c.JSON(http.StatusCreated, guest)
}

// LinkGuestPlayer links a guest placeholder to a real account
// @Summary Link a guest player
// @Description Attach a guest placeholder to an existing player account
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Guest player ID"
// @Param link body models.LinkGuestPlayerRequest true "Player to link to"
// @Success 200 {object} models.GuestPlayer
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /players/guests/{id}/link [patch]
func (h *PlayerHandler) LinkGuestPlayer(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest player ID"})
		return
	}

	var req models.LinkGuestPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.playerService.LinkGuestPlayer(guestID, req.RealPlayerID)
	if err != nil {
		switch err.Error() {
		case "guest player not found", "real player not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "guest player is already linked":
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link guest player"})
		}
		return
	}

	c.JSON(http.StatusOK, guest)
}
