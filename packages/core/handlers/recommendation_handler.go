package handlers

import (
	"net/http"
	"strconv"

	"core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

// GetCompatibilityScores lists compatibility with every past partner
// @Summary Get compatibility scores
// @Description For every partner the player has teamed with, how much better the pair performs than the average of the two individual ratings
// @Tags recommendations
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.CompatibilityEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/compatibility [get]
func (h *RecommendationHandler) GetCompatibilityScores(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	entries, err := h.recommendationService.GetCompatibilityScores(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute compatibility scores"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetRecommendedPartners recommends the best partners for a player
// @Summary Get recommended partners
// @Description Get the player's best partners by compatibility score, restricted to pairs with enough games together
// @Tags recommendations
// @Produce json
// @Param id path string true "Player ID"
// @Param limit query int false "Number of partners to recommend (default: 5, max: 100)"
// @Param min_games query int false "Minimum games played together (default: 3)"
// @Success 200 {array} models.CompatibilityEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id}/recommended-partners [get]
func (h *RecommendationHandler) GetRecommendedPartners(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	limitStr := c.DefaultQuery("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	if limit > 100 {
		limit = 100
	}

	minGamesStr := c.DefaultQuery("min_games", "3")
	minGames, err := strconv.Atoi(minGamesStr)
	if err != nil || minGames < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_games parameter"})
		return
	}

	entries, err := h.recommendationService.GetRecommendedPartners(playerID, limit, minGames)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetTeamRankings retrieves the team leaderboard
// @Summary Get team rankings
// @Description Get established pairs ranked by team rating, best first
// @Tags recommendations
// @Produce json
// @Param limit query int false "Number of teams to retrieve (default: 10, max: 100)"
// @Param min_games query int false "Only include pairs with at least this many games together (default: 0)"
// @Success 200 {array} models.TeamRankingEntry
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/rankings [get]
func (h *RecommendationHandler) GetTeamRankings(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	if limit > 100 {
		limit = 100
	}

	minGamesStr := c.DefaultQuery("min_games", "0")
	minGames, err := strconv.Atoi(minGamesStr)
	if err != nil || minGames < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_games parameter"})
		return
	}

	rankings, err := h.recommendationService.GetTeamRankings(limit, minGames)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team rankings"})
		return
	}

	c.JSON(http.StatusOK, rankings)
}
