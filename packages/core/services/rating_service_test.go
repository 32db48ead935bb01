package services

import (
	"errors"
	"testing"

	"core/models"
	"core/store"
	"core/utils"

	"github.com/google/uuid"
)

func fourPlayers() (uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID) {
	return uuid.New(), uuid.New(), uuid.New(), uuid.New()
}

func outcome(a, b, c, d uuid.UUID, sets []models.SetScore) MatchOutcome {
	return MatchOutcome{
		MatchID:      uuid.New(),
		Team1Players: [2]uuid.UUID{a, b},
		Team2Players: [2]uuid.UUID{c, d},
		Sets:         sets,
	}
}

func team1Victory() []models.SetScore {
	return []models.SetScore{
		{Team1: 21, Team2: 15},
		{Team1: 21, Team2: 18},
	}
}

func TestTeam1Won(t *testing.T) {
	tests := []struct {
		name string
		sets []models.SetScore
		want bool
	}{
		{
			name: "team1 sweeps",
			sets: []models.SetScore{{Team1: 21, Team2: 10}, {Team1: 21, Team2: 12}},
			want: true,
		},
		{
			name: "team2 sweeps",
			sets: []models.SetScore{{Team1: 10, Team2: 21}, {Team1: 12, Team2: 21}},
			want: false,
		},
		{
			name: "team1 takes deciding set",
			sets: []models.SetScore{{Team1: 21, Team2: 18}, {Team1: 15, Team2: 21}, {Team1: 21, Team2: 19}},
			want: true,
		},
		{
			name: "equal set split credits team2",
			sets: []models.SetScore{{Team1: 21, Team2: 15}, {Team1: 15, Team2: 21}},
			want: false,
		},
		{
			name: "drawn sets ignored",
			sets: []models.SetScore{{Team1: 20, Team2: 20}, {Team1: 21, Team2: 15}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Team1Won(tt.sets); got != tt.want {
				t.Errorf("Team1Won() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyMatchResultCreatesRatingsFromDefaults(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRatingService(ratingStore)

	a, b, c, d := fourPlayers()
	if err := service.ApplyMatchResult(outcome(a, b, c, d, team1Victory())); err != nil {
		t.Fatalf("ApplyMatchResult() error = %v", err)
	}

	for _, winnerID := range []uuid.UUID{a, b} {
		rating, err := ratingStore.GetPlayerRating(winnerID)
		if err != nil {
			t.Fatalf("GetPlayerRating() error = %v", err)
		}
		if rating == nil {
			t.Fatalf("winner %s has no rating", winnerID)
		}
		if rating.Mu <= utils.DefaultMu {
			t.Errorf("winner mu = %f, expected > default %f", rating.Mu, utils.DefaultMu)
		}
		if rating.GamesPlayed != 1 {
			t.Errorf("winner games played = %d, want 1", rating.GamesPlayed)
		}
	}

	for _, loserID := range []uuid.UUID{c, d} {
		rating, err := ratingStore.GetPlayerRating(loserID)
		if err != nil {
			t.Fatalf("GetPlayerRating() error = %v", err)
		}
		if rating == nil {
			t.Fatalf("loser %s has no rating", loserID)
		}
		if rating.Mu >= utils.DefaultMu {
			t.Errorf("loser mu = %f, expected < default %f", rating.Mu, utils.DefaultMu)
		}
	}
}

func TestApplyMatchResultIncrementsGamesPlayed(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRatingService(ratingStore)

	a, b, c, d := fourPlayers()
	for i := 0; i < 3; i++ {
		if err := service.ApplyMatchResult(outcome(a, b, c, d, team1Victory())); err != nil {
			t.Fatalf("ApplyMatchResult() round %d error = %v", i, err)
		}
	}

	rating, err := ratingStore.GetPlayerRating(a)
	if err != nil {
		t.Fatalf("GetPlayerRating() error = %v", err)
	}
	if rating.GamesPlayed != 3 {
		t.Errorf("games played = %d, want 3", rating.GamesPlayed)
	}

	team, err := ratingStore.GetTeamRating(a, b)
	if err != nil {
		t.Fatalf("GetTeamRating() error = %v", err)
	}
	if team == nil {
		t.Fatal("team rating missing")
	}
	if team.GamesPlayed != 3 {
		t.Errorf("team games played = %d, want 3", team.GamesPlayed)
	}
}

func TestApplyMatchResultEqualSetSplitCreditsTeam2(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRatingService(ratingStore)

	a, b, c, d := fourPlayers()
	split := []models.SetScore{
		{Team1: 21, Team2: 15},
		{Team1: 15, Team2: 21},
	}

	if err := service.ApplyMatchResult(outcome(a, b, c, d, split)); err != nil {
		t.Fatalf("ApplyMatchResult() error = %v", err)
	}

	team2Rating, _ := ratingStore.GetPlayerRating(c)
	if team2Rating.Mu <= utils.DefaultMu {
		t.Errorf("team2 player mu = %f, expected > default on equal split", team2Rating.Mu)
	}

	team1Rating, _ := ratingStore.GetPlayerRating(a)
	if team1Rating.Mu >= utils.DefaultMu {
		t.Errorf("team1 player mu = %f, expected < default on equal split", team1Rating.Mu)
	}
}

func TestApplyMatchResultInvalidComposition(t *testing.T) {
	a, b, c, d := fourPlayers()

	tests := []struct {
		name    string
		outcome MatchOutcome
	}{
		{
			name:    "duplicate player across teams",
			outcome: outcome(a, b, a, d, team1Victory()),
		},
		{
			name:    "duplicate player within team",
			outcome: outcome(a, a, c, d, team1Victory()),
		},
		{
			name:    "nil player id",
			outcome: outcome(a, b, uuid.Nil, d, team1Victory()),
		},
		{
			name:    "no sets",
			outcome: outcome(a, b, c, d, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratingStore := store.NewMemoryRatingStore()
			service := NewRatingService(ratingStore)

			err := service.ApplyMatchResult(tt.outcome)
			if !errors.Is(err, ErrInvalidMatchComposition) {
				t.Fatalf("ApplyMatchResult() error = %v, want ErrInvalidMatchComposition", err)
			}

			// Nothing may be written on a rejected match.
			if entries := ratingStore.RatingHistory(); len(entries) != 0 {
				t.Errorf("rating history has %d entries, want 0", len(entries))
			}
		})
	}
}

func TestApplyMatchResultWritesHistory(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRatingService(ratingStore)

	a, b, c, d := fourPlayers()
	out := outcome(a, b, c, d, team1Victory())
	if err := service.ApplyMatchResult(out); err != nil {
		t.Fatalf("ApplyMatchResult() error = %v", err)
	}

	entries := ratingStore.RatingHistory()
	if len(entries) != 4 {
		t.Fatalf("history entries = %d, want 4", len(entries))
	}

	for _, entry := range entries {
		if entry.MatchID != out.MatchID {
			t.Errorf("history match id = %s, want %s", entry.MatchID, out.MatchID)
		}
		if entry.MuBefore != utils.DefaultMu {
			t.Errorf("mu before = %f, want default %f", entry.MuBefore, utils.DefaultMu)
		}
		if entry.SigmaAfter >= entry.SigmaBefore {
			t.Errorf("sigma after %f not below sigma before %f", entry.SigmaAfter, entry.SigmaBefore)
		}
		wonExpected := entry.PlayerID == a || entry.PlayerID == b
		if entry.Won != wonExpected {
			t.Errorf("player %s won = %v, want %v", entry.PlayerID, entry.Won, wonExpected)
		}
	}
}

func TestApplyMatchResultTeamRecordTracksFirstMember(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRatingService(ratingStore)

	a, b, c, d := fourPlayers()
	if err := service.ApplyMatchResult(outcome(a, b, c, d, team1Victory())); err != nil {
		t.Fatalf("ApplyMatchResult() error = %v", err)
	}

	team, err := ratingStore.GetTeamRating(a, b)
	if err != nil {
		t.Fatalf("GetTeamRating() error = %v", err)
	}
	if team == nil {
		t.Fatal("team rating missing")
	}

	first, _ := ratingStore.GetPlayerRating(a)
	if team.Mu != first.Mu || team.Sigma != first.Sigma {
		t.Errorf("team rating (%f, %f) does not match first member's rating (%f, %f)",
			team.Mu, team.Sigma, first.Mu, first.Sigma)
	}
}

func TestTeamRatingPairOrderIndependent(t *testing.T) {
	ratingStore := store.NewMemoryRatingStore()
	service := NewRatingService(ratingStore)

	a, b, c, d := fourPlayers()
	if err := service.ApplyMatchResult(outcome(a, b, c, d, team1Victory())); err != nil {
		t.Fatalf("ApplyMatchResult() error = %v", err)
	}

	forward, err := ratingStore.GetTeamRating(a, b)
	if err != nil {
		t.Fatalf("GetTeamRating(a, b) error = %v", err)
	}
	reverse, err := ratingStore.GetTeamRating(b, a)
	if err != nil {
		t.Fatalf("GetTeamRating(b, a) error = %v", err)
	}

	if forward == nil || reverse == nil {
		t.Fatal("team rating lookup must be order independent")
	}
	if forward.Mu != reverse.Mu || forward.GamesPlayed != reverse.GamesPlayed {
		t.Errorf("lookups disagree: (%f, %d) vs (%f, %d)",
			forward.Mu, forward.GamesPlayed, reverse.Mu, reverse.GamesPlayed)
	}
}
