package services

import (
	"math"
	"testing"

	"core/models"
	"core/store"

	"github.com/google/uuid"
)

type stubProfiles map[uuid.UUID]models.Profile

func (s stubProfiles) GetProfilesByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	result := make(map[uuid.UUID]models.Profile)
	for _, id := range ids {
		if profile, ok := s[id]; ok {
			result[id] = profile
		}
	}
	return result, nil
}

func profileFor(id uuid.UUID, name string) models.Profile {
	return models.Profile{UserID: id, DisplayName: name}
}

func seedTeam(t *testing.T, ratingStore *store.MemoryRatingStore, a, b uuid.UUID, mu float64, games int) {
	t.Helper()
	for i := 0; i < games; i++ {
		if _, err := ratingStore.UpsertTeamRating(a, b, mu, 4.0); err != nil {
			t.Fatalf("UpsertTeamRating() error = %v", err)
		}
	}
}

func TestGetCompatibilityScores(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()

	self := uuid.New()
	partner := uuid.New()

	// Worked example: self mu 25.0, partner mu 26.0 -> average 25.5,
	// team mu 24.2 -> compatibility -1.3.
	if _, err := ratingStore.UpsertPlayerRating(self, 25.0, 6.0, 10); err != nil {
		t.Fatalf("UpsertPlayerRating() error = %v", err)
	}
	if _, err := ratingStore.UpsertPlayerRating(partner, 26.0, 6.0, 10); err != nil {
		t.Fatalf("UpsertPlayerRating() error = %v", err)
	}
	seedTeam(t, ratingStore, self, partner, 24.2, 1)

	profiles := stubProfiles{
		self:    profileFor(self, "Self"),
		partner: profileFor(partner, "Partner"),
	}

	service := NewRecommendationService(ratingStore, profiles)

	entries, err := service.GetCompatibilityScores(self)
	if err != nil {
		t.Fatalf("GetCompatibilityScores() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Partner.UserID != partner {
		t.Errorf("partner id = %s, want %s", entry.Partner.UserID, partner)
	}
	if math.Abs(entry.AvgIndividualRating-25.5) > 1e-9 {
		t.Errorf("avg individual = %f, want 25.5", entry.AvgIndividualRating)
	}
	if math.Abs(entry.CompatibilityScore-(-1.3)) > 1e-9 {
		t.Errorf("compatibility = %f, want -1.3", entry.CompatibilityScore)
	}
}

func TestGetCompatibilityScoresSortedDescending(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()

	self := uuid.New()
	good := uuid.New()
	bad := uuid.New()

	seedTeam(t, ratingStore, self, good, 30.0, 1)
	seedTeam(t, ratingStore, self, bad, 20.0, 1)

	profiles := stubProfiles{
		self: profileFor(self, "Self"),
		good: profileFor(good, "Good"),
		bad:  profileFor(bad, "Bad"),
	}

	service := NewRecommendationService(ratingStore, profiles)

	entries, err := service.GetCompatibilityScores(self)
	if err != nil {
		t.Fatalf("GetCompatibilityScores() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Partner.UserID != good {
		t.Errorf("best partner = %s, want %s", entries[0].Partner.UserID, good)
	}
	if entries[0].CompatibilityScore < entries[1].CompatibilityScore {
		t.Error("entries are not sorted best first")
	}
}

func TestGetCompatibilityScoresDropsPartnersWithoutProfile(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()

	self := uuid.New()
	known := uuid.New()
	ghost := uuid.New()

	seedTeam(t, ratingStore, self, known, 26.0, 1)
	seedTeam(t, ratingStore, self, ghost, 28.0, 1)

	profiles := stubProfiles{
		self:  profileFor(self, "Self"),
		known: profileFor(known, "Known"),
	}

	service := NewRecommendationService(ratingStore, profiles)

	entries, err := service.GetCompatibilityScores(self)
	if err != nil {
		t.Fatalf("GetCompatibilityScores() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Partner.UserID != known {
		t.Errorf("kept partner = %s, want %s", entries[0].Partner.UserID, known)
	}
}

func TestGetRecommendedPartners(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()

	self := uuid.New()
	veteran := uuid.New()
	rookie := uuid.New()

	seedTeam(t, ratingStore, self, veteran, 27.0, 5)
	seedTeam(t, ratingStore, self, rookie, 29.0, 1)

	profiles := stubProfiles{
		self:    profileFor(self, "Self"),
		veteran: profileFor(veteran, "Veteran"),
		rookie:  profileFor(rookie, "Rookie"),
	}

	service := NewRecommendationService(ratingStore, profiles)

	t.Run("filters by min games", func(t *testing.T) {
		entries, err := service.GetRecommendedPartners(self, 10, 3)
		if err != nil {
			t.Fatalf("GetRecommendedPartners() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("entries = %d, want 1", len(entries))
		}
		if entries[0].Partner.UserID != veteran {
			t.Errorf("recommended = %s, want veteran %s", entries[0].Partner.UserID, veteran)
		}
	})

	t.Run("zero limit yields empty list", func(t *testing.T) {
		entries, err := service.GetRecommendedPartners(self, 0, 0)
		if err != nil {
			t.Fatalf("GetRecommendedPartners() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("entries = %d, want 0", len(entries))
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		entries, err := service.GetRecommendedPartners(self, 1, 0)
		if err != nil {
			t.Fatalf("GetRecommendedPartners() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("entries = %d, want 1", len(entries))
		}
	})
}

func TestGetCompatibilityScoresNoTeams(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRecommendationService(ratingStore, stubProfiles{})

	entries, err := service.GetCompatibilityScores(uuid.New())
	if err != nil {
		t.Fatalf("GetCompatibilityScores() error = %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want empty non-nil slice", entries)
	}
}

func TestGetTeamRankings(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()

	a, b := uuid.New(), uuid.New()
	c, d := uuid.New(), uuid.New()

	seedTeam(t, ratingStore, a, b, 28.0, 4)
	seedTeam(t, ratingStore, c, d, 24.0, 4)

	profiles := stubProfiles{
		a: profileFor(a, "A"),
		b: profileFor(b, "B"),
		c: profileFor(c, "C"),
	}

	service := NewRecommendationService(ratingStore, profiles)

	rankings, err := service.GetTeamRankings(10, 0)
	if err != nil {
		t.Fatalf("GetTeamRankings() error = %v", err)
	}
	if len(rankings) != 2 {
		t.Fatalf("rankings = %d, want 2", len(rankings))
	}

	if rankings[0].TeamRating < rankings[1].TeamRating {
		t.Error("rankings are not sorted best first")
	}

	// Players without a profile keep their slot with a placeholder name.
	for _, ranking := range rankings {
		for _, player := range []models.RankedPlayer{ranking.PlayerA, ranking.PlayerB} {
			if player.ID == d && player.Name != "Unknown" {
				t.Errorf("player without profile named %q, want Unknown", player.Name)
			}
		}
	}
}

func TestGetTeamRankingsMinGamesFilter(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()

	a, b := uuid.New(), uuid.New()
	c, d := uuid.New(), uuid.New()

	seedTeam(t, ratingStore, a, b, 28.0, 5)
	seedTeam(t, ratingStore, c, d, 30.0, 1)

	profiles := stubProfiles{
		a: profileFor(a, "A"),
		b: profileFor(b, "B"),
		c: profileFor(c, "C"),
		d: profileFor(d, "D"),
	}

	service := NewRecommendationService(ratingStore, profiles)

	rankings, err := service.GetTeamRankings(10, 3)
	if err != nil {
		t.Fatalf("GetTeamRankings() error = %v", err)
	}
	if len(rankings) != 1 {
		t.Fatalf("rankings = %d, want 1", len(rankings))
	}
	if rankings[0].GamesPlayed < 3 {
		t.Errorf("kept pair has %d games, want >= 3", rankings[0].GamesPlayed)
	}
}
