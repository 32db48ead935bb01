package services

import (
	"errors"
	"fmt"

	"core/models"
	"core/store"
	"core/utils"

	"github.com/google/uuid"
)

// ErrInvalidMatchComposition is returned when a match does not have two
// disjoint teams of two distinct players. It is raised before any write.
var ErrInvalidMatchComposition = errors.New("match must have two disjoint teams of two distinct players")

// MatchOutcome is the finished-match input to the rating update.
type MatchOutcome struct {
	MatchID      uuid.UUID
	Team1Players [2]uuid.UUID
	Team2Players [2]uuid.UUID
	Sets         []models.SetScore
}

// RatingService converts match outcomes into persisted TrueSkill updates for
// the four participants and their two pairings.
type RatingService struct {
	store store.RatingStore
}

func NewRatingService(ratingStore store.RatingStore) *RatingService {
	return &RatingService{
		store: ratingStore,
	}
}

// Team1Won reports whether team1 took strictly more sets than team2.
// An equal split credits team2 with the win.
func Team1Won(sets []models.SetScore) bool {
	team1Wins := 0
	team2Wins := 0
	for _, set := range sets {
		if set.Team1 > set.Team2 {
			team1Wins++
		} else if set.Team2 > set.Team1 {
			team2Wins++
		}
	}
	return team1Wins > team2Wins
}

// ApplyMatchResult loads the four participants' current ratings (default
// priors when absent), runs the skill model for the observed win/loss, and
// writes back the four player ratings plus both pair ratings.
//
// Each write is an independent upsert: a store failure mid-sequence leaves
// the earlier writes in place. Calling this twice for the same match counts
// the match twice.
func (s *RatingService) ApplyMatchResult(outcome MatchOutcome) error {
	if err := validateComposition(outcome); err != nil {
		return err
	}

	team1Won := Team1Won(outcome.Sets)

	team1Ratings, team1Games, err := s.loadPair(outcome.Team1Players)
	if err != nil {
		return err
	}
	team2Ratings, team2Games, err := s.loadPair(outcome.Team2Players)
	if err != nil {
		return err
	}

	var newTeam1, newTeam2 [2]utils.Rating
	if team1Won {
		newTeam1, newTeam2 = utils.RateDoubles(team1Ratings, team2Ratings)
	} else {
		newTeam2, newTeam1 = utils.RateDoubles(team2Ratings, team1Ratings)
	}

	if err := s.persistPair(outcome, outcome.Team1Players, team1Ratings, newTeam1, team1Games, team1Won); err != nil {
		return err
	}
	if err := s.persistPair(outcome, outcome.Team2Players, team2Ratings, newTeam2, team2Games, !team1Won); err != nil {
		return err
	}

	// The pair record carries its first member's post-match rating.
	if _, err := s.store.UpsertTeamRating(outcome.Team1Players[0], outcome.Team1Players[1], newTeam1[0].Mu, newTeam1[0].Sigma); err != nil {
		return fmt.Errorf("failed to upsert team1 rating: %w", err)
	}
	if _, err := s.store.UpsertTeamRating(outcome.Team2Players[0], outcome.Team2Players[1], newTeam2[0].Mu, newTeam2[0].Sigma); err != nil {
		return fmt.Errorf("failed to upsert team2 rating: %w", err)
	}

	return nil
}

func validateComposition(outcome MatchOutcome) error {
	ids := [4]uuid.UUID{
		outcome.Team1Players[0], outcome.Team1Players[1],
		outcome.Team2Players[0], outcome.Team2Players[1],
	}

	for i, id := range ids {
		if id == uuid.Nil {
			return ErrInvalidMatchComposition
		}
		for j := i + 1; j < len(ids); j++ {
			if id == ids[j] {
				return ErrInvalidMatchComposition
			}
		}
	}

	if len(outcome.Sets) == 0 {
		return ErrInvalidMatchComposition
	}

	return nil
}

// loadPair fetches current ratings and games-played counters for one team,
// defaulting absent players to the unrated prior.
func (s *RatingService) loadPair(players [2]uuid.UUID) ([2]utils.Rating, [2]int, error) {
	var ratings [2]utils.Rating
	var games [2]int

	for i, playerID := range players {
		current, err := s.store.GetPlayerRating(playerID)
		if err != nil {
			return ratings, games, fmt.Errorf("failed to load rating for player %s: %w", playerID, err)
		}

		if current == nil {
			ratings[i] = utils.NewDefaultRating()
			games[i] = 0
		} else {
			ratings[i] = utils.Rating{Mu: current.Mu, Sigma: current.Sigma}
			games[i] = current.GamesPlayed
		}
	}

	return ratings, games, nil
}

func (s *RatingService) persistPair(outcome MatchOutcome, players [2]uuid.UUID, before, after [2]utils.Rating, games [2]int, won bool) error {
	for i, playerID := range players {
		if _, err := s.store.UpsertPlayerRating(playerID, after[i].Mu, after[i].Sigma, games[i]+1); err != nil {
			return fmt.Errorf("failed to upsert rating for player %s: %w", playerID, err)
		}

		entry := models.RatingHistory{
			PlayerID:    playerID,
			MatchID:     outcome.MatchID,
			MuBefore:    before[i].Mu,
			MuAfter:     after[i].Mu,
			SigmaBefore: before[i].Sigma,
			SigmaAfter:  after[i].Sigma,
			Won:         won,
		}
		if err := s.store.AppendRatingHistory(entry); err != nil {
			return fmt.Errorf("failed to append rating history for player %s: %w", playerID, err)
		}
	}

	return nil
}
