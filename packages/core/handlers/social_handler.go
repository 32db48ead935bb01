package handlers

import (
	"net/http"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SocialHandler struct {
	socialService *services.SocialService
}

func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// Follow follows another player
// @Summary Follow a player
// @Description Follow another player; following someone twice is a no-op
// @Tags social
// @Accept json
// @Produce json
// @Param follow body models.FollowRequest true "Player to follow"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /social/follow [post]
func (h *SocialHandler) Follow(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.socialService.Follow(userID, req.FolloweeID); err != nil {
		if err.Error() == "cannot follow yourself" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow player"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Unfollow unfollows another player
// @Summary Unfollow a player
// @Description Stop following another player
// @Tags social
// @Accept json
// @Produce json
// @Param follow body models.FollowRequest true "Player to unfollow"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /social/unfollow [post]
func (h *SocialHandler) Unfollow(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.socialService.Unfollow(userID, req.FolloweeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow player"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFollowers lists a player's followers
// @Summary Get followers
// @Description Get the profiles of everyone following the player
// @Tags social
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/followers [get]
func (h *SocialHandler) GetFollowers(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	profiles, err := h.socialService.GetFollowers(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve followers"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetFollowing lists who a player follows
// @Summary Get following
// @Description Get the profiles of everyone the player follows
// @Tags social
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/following [get]
func (h *SocialHandler) GetFollowing(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	profiles, err := h.socialService.GetFollowing(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve following"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetMutuals lists mutual follows
// @Summary Get mutual follows
// @Description Get the players the given player follows who follow them back
// @Tags social
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/mutuals [get]
func (h *SocialHandler) GetMutuals(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	profiles, err := h.socialService.GetMutuals(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mutual follows"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}
