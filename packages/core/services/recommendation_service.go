package services

import (
	"sort"

	"core/models"
	"core/store"
	"core/utils"

	"github.com/google/uuid"
)

// ProfileLookup resolves player ids to their public profiles. Ids without a
// profile are simply missing from the result.
type ProfileLookup interface {
	GetProfilesByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Profile, error)
}

// RecommendationService is the read-only analytics layer over the rating
// store: compatibility scores, partner recommendations and team rankings.
// It never runs the skill model.
type RecommendationService struct {
	store    store.RatingStore
	profiles ProfileLookup
}

func NewRecommendationService(ratingStore store.RatingStore, profiles ProfileLookup) *RecommendationService {
	return &RecommendationService{
		store:    ratingStore,
		profiles: profiles,
	}
}

// GetCompatibilityScores lists, for every partner the player has teamed with,
// how much better (or worse) the pair rating is than the average of the two
// individual ratings, sorted best first.
func (s *RecommendationService) GetCompatibilityScores(playerID uuid.UUID) ([]models.CompatibilityEntry, error) {
	return s.compatibilityEntries(playerID, 0)
}

// GetRecommendedPartners is GetCompatibilityScores restricted to pairings
// with at least minGames games together, truncated to limit entries.
// A limit of zero or less yields an empty list.
func (s *RecommendationService) GetRecommendedPartners(playerID uuid.UUID, limit, minGames int) ([]models.CompatibilityEntry, error) {
	if limit <= 0 {
		return []models.CompatibilityEntry{}, nil
	}

	entries, err := s.compatibilityEntries(playerID, minGames)
	if err != nil {
		return nil, err
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *RecommendationService) compatibilityEntries(playerID uuid.UUID, minGames int) ([]models.CompatibilityEntry, error) {
	teams, err := s.store.ListTeamsForPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return []models.CompatibilityEntry{}, nil
	}

	// The querying player's own mu is fetched once and used for every entry.
	selfMu, err := s.playerMu(playerID)
	if err != nil {
		return nil, err
	}

	type scored struct {
		partnerID uuid.UUID
		entry     models.CompatibilityEntry
	}

	var candidates []scored
	partnerIDs := make([]uuid.UUID, 0, len(teams))

	for _, team := range teams {
		if team.GamesPlayed < minGames {
			continue
		}

		partnerID, ok := team.PartnerOf(playerID)
		if !ok {
			continue
		}

		partnerMu, err := s.playerMu(partnerID)
		if err != nil {
			return nil, err
		}

		avgIndividual := (selfMu + partnerMu) / 2.0
		candidates = append(candidates, scored{
			partnerID: partnerID,
			entry: models.CompatibilityEntry{
				TeamRating:          team.Mu,
				AvgIndividualRating: avgIndividual,
				CompatibilityScore:  team.Mu - avgIndividual,
				GamesPlayedTogether: team.GamesPlayed,
			},
		})
		partnerIDs = append(partnerIDs, partnerID)
	}

	if len(candidates) == 0 {
		return []models.CompatibilityEntry{}, nil
	}

	profiles, err := s.profiles.GetProfilesByIDs(partnerIDs)
	if err != nil {
		return nil, err
	}

	// Partners without a profile are dropped from the result.
	entries := make([]models.CompatibilityEntry, 0, len(candidates))
	for _, candidate := range candidates {
		profile, ok := profiles[candidate.partnerID]
		if !ok {
			continue
		}

		entry := candidate.entry
		entry.Partner = models.PartnerProfile{
			UserID:      profile.UserID,
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompatibilityScore > entries[j].CompatibilityScore
	})

	return entries, nil
}

// GetTeamRankings returns the global team leaderboard by pair mu, annotated
// with both partners' display names. A positive minGames restricts the board
// to established pairs.
func (s *RecommendationService) GetTeamRankings(limit, minGames int) ([]models.TeamRankingEntry, error) {
	if limit <= 0 {
		return []models.TeamRankingEntry{}, nil
	}

	var teams []models.TeamRating
	var err error
	if minGames > 0 {
		teams, err = s.store.ListTeamsAboveGamesThreshold(minGames)
		if err == nil && len(teams) > limit {
			teams = teams[:limit]
		}
	} else {
		teams, err = s.store.ListTopTeams(limit)
	}
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return []models.TeamRankingEntry{}, nil
	}

	idSet := make(map[uuid.UUID]struct{}, len(teams)*2)
	ids := make([]uuid.UUID, 0, len(teams)*2)
	for _, team := range teams {
		for _, id := range []uuid.UUID{team.PlayerA, team.PlayerB} {
			if _, seen := idSet[id]; !seen {
				idSet[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	profiles, err := s.profiles.GetProfilesByIDs(ids)
	if err != nil {
		return nil, err
	}

	rankings := make([]models.TeamRankingEntry, 0, len(teams))
	for _, team := range teams {
		rankings = append(rankings, models.TeamRankingEntry{
			PlayerA:     rankedPlayer(team.PlayerA, profiles),
			PlayerB:     rankedPlayer(team.PlayerB, profiles),
			TeamRating:  team.Mu,
			GamesPlayed: team.GamesPlayed,
		})
	}

	return rankings, nil
}

func rankedPlayer(id uuid.UUID, profiles map[uuid.UUID]models.Profile) models.RankedPlayer {
	name := "Unknown"
	if profile, ok := profiles[id]; ok {
		name = profile.DisplayName
	}
	return models.RankedPlayer{ID: id, Name: name}
}

// playerMu returns the player's current mean skill, defaulting for players
// who have never been rated.
func (s *RecommendationService) playerMu(playerID uuid.UUID) (float64, error) {
	rating, err := s.store.GetPlayerRating(playerID)
	if err != nil {
		return 0, err
	}
	if rating == nil {
		return utils.DefaultMu, nil
	}
	return rating.Mu, nil
}
