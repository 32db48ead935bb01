package core

import (
	"log"

	"core/cron"
	"core/handlers"
	"core/services"
	"core/store"

	authMiddleware "auth/middleware"
	authModels "auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler         *handlers.PlayerHandler
	PlayerService         *services.PlayerService
	MatchHandler          *handlers.MatchHandler
	MatchService          *services.MatchService
	RatingService         *services.RatingService
	RecommendationHandler *handlers.RecommendationHandler
	RecommendationService *services.RecommendationService
	VenueHandler          *handlers.VenueHandler
	VenueService          *services.VenueService
	SocialHandler         *handlers.SocialHandler
	SocialService         *services.SocialService
	RatingHistoryHandler  *handlers.RatingHistoryHandler
	StatsHandler          *handlers.StatsHandler
	StatsService          *services.StatsService
	AutoValidationService *services.AutoValidationService
	Scheduler             *cron.Scheduler
	RatingStore           store.RatingStore
	db                    *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	ratingStore := store.NewGormRatingStore(db)

	ratingService := services.NewRatingService(ratingStore)
	playerService := services.NewPlayerService(db, ratingStore)
	matchService := services.NewMatchService(db, ratingService)
	recommendationService := services.NewRecommendationService(ratingStore, playerService)
	venueService := services.NewVenueService(db)
	socialService := services.NewSocialService(db, playerService)
	statsService := services.NewStatsService(db)

	playerHandler := handlers.NewPlayerHandler(playerService, matchService)
	matchHandler := handlers.NewMatchHandler(matchService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	venueHandler := handlers.NewVenueHandler(venueService, matchService)
	socialHandler := handlers.NewSocialHandler(socialService)
	ratingHistoryHandler := handlers.NewRatingHistoryHandler(playerService)
	statsHandler := handlers.NewStatsHandler(statsService)

	autoValidationService := services.NewAutoValidationService(db, matchService)
	scheduler := cron.NewScheduler(autoValidationService)

	return &Module{
		PlayerHandler:         playerHandler,
		PlayerService:         playerService,
		MatchHandler:          matchHandler,
		MatchService:          matchService,
		RatingService:         ratingService,
		RecommendationHandler: recommendationHandler,
		RecommendationService: recommendationService,
		VenueHandler:          venueHandler,
		VenueService:          venueService,
		SocialHandler:         socialHandler,
		SocialService:         socialService,
		RatingHistoryHandler:  ratingHistoryHandler,
		StatsHandler:          statsHandler,
		StatsService:          statsService,
		AutoValidationService: autoValidationService,
		Scheduler:             scheduler,
		RatingStore:           ratingStore,
		db:                    db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	players := r.Group("/players")
	{
		players.GET("/top", m.PlayerHandler.GetTopPlayers)
		players.PATCH("/me", authMiddleware.JWTMiddleware(), m.PlayerHandler.UpdateProfile)
		players.POST("/guests", authMiddleware.JWTMiddleware(), m.PlayerHandler.CreateGuestPlayer)
		players.PATCH("/guests/:id/link", authMiddleware.JWTMiddleware(), m.PlayerHandler.LinkGuestPlayer)
		players.GET("/:id", m.PlayerHandler.GetProfile)
		players.GET("/:id/rating", m.PlayerHandler.GetPlayerRating)
		players.GET("/:id/rating-history", m.PlayerHandler.GetRatingHistory)
		players.GET("/:id/matches", m.PlayerHandler.GetPlayerMatches)
		players.GET("/:id/compatibility", m.RecommendationHandler.GetCompatibilityScores)
		players.GET("/:id/recommended-partners", m.RecommendationHandler.GetRecommendedPartners)
		players.GET("/:id/followers", m.SocialHandler.GetFollowers)
		players.GET("/:id/following", m.SocialHandler.GetFollowing)
		players.GET("/:id/mutuals", m.SocialHandler.GetMutuals)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/recent", m.MatchHandler.GetRecentMatches)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.POST("", authMiddleware.JWTMiddleware(), m.MatchHandler.CreateMatch)
		matches.PATCH("/:id", authMiddleware.JWTMiddleware(), m.MatchHandler.UpdateMatchStatus)
		matches.PATCH("/:id/reject", authMiddleware.JWTMiddleware(), m.MatchHandler.RejectMatch)
		matches.PATCH("/:id/cancel", authMiddleware.JWTMiddleware(), authMiddleware.RequireRole(m.db, authModels.RoleAdmin), m.MatchHandler.CancelMatch)
		matches.DELETE("/:id", authMiddleware.JWTMiddleware(), authMiddleware.RequireRole(m.db, authModels.RoleAdmin), m.MatchHandler.DeleteMatch)
	}

	venues := r.Group("/venues")
	{
		venues.GET("/nearby", m.VenueHandler.FindNearbyVenues)
		venues.GET("/:id", m.VenueHandler.GetVenue)
		venues.GET("/:id/matches", m.VenueHandler.GetVenueMatches)
		venues.POST("", authMiddleware.JWTMiddleware(), m.VenueHandler.CreateVenue)
		venues.PATCH("/:id", authMiddleware.JWTMiddleware(), m.VenueHandler.UpdateVenue)
	}

	social := r.Group("/social")
	{
		social.POST("/follow", authMiddleware.JWTMiddleware(), m.SocialHandler.Follow)
		social.POST("/unfollow", authMiddleware.JWTMiddleware(), m.SocialHandler.Unfollow)
	}

	teams := r.Group("/teams")
	{
		teams.GET("/rankings", m.RecommendationHandler.GetTeamRankings)
	}

	ratingHistory := r.Group("/rating-history")
	{
		ratingHistory.GET("/recent", m.RatingHistoryHandler.GetRecentRatingChanges)
	}

	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the cron scheduler for auto-validation
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
