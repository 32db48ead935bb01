package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	coreModels "core/models"
	coreServices "core/services"
	coreStore "core/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

var playerNames = []string{
	"Alice Martin", "Bruno Chen", "Camille Dubois", "David Okafor",
	"Emma Silva", "Felix Wagner", "Grace Kim", "Hugo Leroy",
	"Ines Moreau", "Jonas Berg",
}

var venueSeeds = []struct {
	name    string
	lat     float64
	lng     float64
	address string
}{
	{"Gymnase des Lilas", 48.8796, 2.4174, "12 rue des Lilas, Paris"},
	{"Halle Sportive Sud", 48.8245, 2.3400, "3 avenue du Stade, Paris"},
	{"Complexe Arena Est", 48.8530, 2.4090, "45 boulevard de l'Est, Paris"},
}

// GenerateTestData seeds users, profiles, venues and a batch of confirmed
// matches so ratings, team ratings and history are populated.
func (f *Fixtures) GenerateTestData() error {
	ratingStore := coreStore.NewGormRatingStore(f.db)
	ratingService := coreServices.NewRatingService(ratingStore)
	playerService := coreServices.NewPlayerService(f.db, ratingStore)
	matchService := coreServices.NewMatchService(f.db, ratingService)

	hashedPassword, err := authUtils.HashPassword("password123")
	if err != nil {
		return err
	}

	playerIDs := make([]uuid.UUID, 0, len(playerNames))
	for i, name := range playerNames {
		user := authModels.User{
			ID:       uuid.New(),
			Email:    fmt.Sprintf("player%d@shuttle.test", i+1),
			Username: name,
			Password: hashedPassword,
			Enabled:  true,
			Roles:    authModels.GetDefaultRoles(),
		}
		if err := f.db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}

		if _, err := playerService.CreateProfile(user.ID, name); err != nil {
			return fmt.Errorf("failed to create profile for %s: %w", name, err)
		}
		playerIDs = append(playerIDs, user.ID)
	}

	venueIDs := make([]uuid.UUID, 0, len(venueSeeds))
	for _, seed := range venueSeeds {
		venue := coreModels.Venue{
			ID:        uuid.New(),
			Name:      seed.name,
			Latitude:  seed.lat,
			Longitude: seed.lng,
			Address:   seed.address,
			CreatedBy: playerIDs[0],
		}
		if err := f.db.Create(&venue).Error; err != nil {
			return fmt.Errorf("failed to create venue %s: %w", seed.name, err)
		}
		venueIDs = append(venueIDs, venue.ID)
	}

	// 40 confirmed matches with random team compositions
	for i := 0; i < 40; i++ {
		ids := pickFourPlayers(playerIDs)

		req := coreModels.CreateMatchRequest{
			VenueID:      venueIDs[rand.Intn(len(venueIDs))],
			Team1Players: []uuid.UUID{ids[0], ids[1]},
			Team2Players: []uuid.UUID{ids[2], ids[3]},
			Scores:       randomScores(),
			PlayedAt:     time.Now().AddDate(0, 0, -rand.Intn(30)),
		}

		match, err := matchService.CreateMatch(req, ids[0])
		if err != nil {
			return fmt.Errorf("failed to create match %d: %w", i, err)
		}

		if _, err := matchService.ConfirmMatch(match.ID); err != nil {
			return fmt.Errorf("failed to confirm match %d: %w", i, err)
		}
	}

	// A handful of pending matches for the auto-validation path
	for i := 0; i < 5; i++ {
		ids := pickFourPlayers(playerIDs)

		req := coreModels.CreateMatchRequest{
			VenueID:      venueIDs[rand.Intn(len(venueIDs))],
			Team1Players: []uuid.UUID{ids[0], ids[1]},
			Team2Players: []uuid.UUID{ids[2], ids[3]},
			Scores:       randomScores(),
			PlayedAt:     time.Now(),
		}

		if _, err := matchService.CreateMatch(req, ids[0]); err != nil {
			return fmt.Errorf("failed to create pending match %d: %w", i, err)
		}
	}

	// Some follow relationships
	for i := range playerIDs {
		for j := 0; j < 3; j++ {
			other := playerIDs[rand.Intn(len(playerIDs))]
			if other == playerIDs[i] {
				continue
			}
			follow := coreModels.Follow{
				FollowerID: playerIDs[i],
				FolloweeID: other,
			}
			f.db.Where("follower_id = ? AND followee_id = ?", follow.FollowerID, follow.FolloweeID).
				FirstOrCreate(&follow)
		}
	}

	return nil
}

// ClearAllData wipes all seeded tables in dependency order.
func (f *Fixtures) ClearAllData() error {
	tables := []string{
		"rating_history",
		"team_ratings",
		"player_ratings",
		"follows",
		"guest_players",
		"matches",
		"venues",
		"profiles",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	return nil
}

func pickFourPlayers(playerIDs []uuid.UUID) []uuid.UUID {
	perm := rand.Perm(len(playerIDs))
	return []uuid.UUID{
		playerIDs[perm[0]],
		playerIDs[perm[1]],
		playerIDs[perm[2]],
		playerIDs[perm[3]],
	}
}

func randomScores() []coreModels.SetScore {
	sets := []coreModels.SetScore{}
	team1Wins := 0
	team2Wins := 0

	for team1Wins < 2 && team2Wins < 2 {
		winner := 21
		loser := rand.Intn(20)
		if rand.Intn(2) == 0 {
			sets = append(sets, coreModels.SetScore{Team1: winner, Team2: loser})
			team1Wins++
		} else {
			sets = append(sets, coreModels.SetScore{Team1: loser, Team2: winner})
			team2Wins++
		}
	}

	return sets
}
