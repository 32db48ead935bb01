package handlers

import (
	"net/http"
	"strconv"

	"core/services"

	"github.com/gin-gonic/gin"
)

type RatingHistoryHandler struct {
	playerService *services.PlayerService
}

func NewRatingHistoryHandler(playerService *services.PlayerService) *RatingHistoryHandler {
	return &RatingHistoryHandler{
		playerService: playerService,
	}
}

// GetRecentRatingChanges retrieves the latest rating updates across all players
// @Summary Get recent rating changes
// @Description Get the N most recent rating updates, newest first
// @Tags rating-history
// @Produce json
// @Param limit query int false "Number of changes to retrieve (default: 20, max: 100)"
// @Success 200 {array} models.RatingHistory
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rating-history/recent [get]
func (h *RatingHistoryHandler) GetRecentRatingChanges(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	if limit > 100 {
		limit = 100
	}

	history, err := h.playerService.GetRecentRatingChanges(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rating changes"})
		return
	}

	c.JSON(http.StatusOK, history)
}
