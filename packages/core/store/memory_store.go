package store

import (
	"sort"
	"sync"

	"core/models"

	"github.com/google/uuid"
)

type pairKey struct {
	a uuid.UUID
	b uuid.UUID
}

// MemoryRatingStore is a map-backed RatingStore used by tests and dry runs.
// It honors the same canonical-pair and replace-on-write contract as the
// Postgres store.
type MemoryRatingStore struct {
	mu      sync.RWMutex
	players map[uuid.UUID]models.PlayerRating
	teams   map[pairKey]models.TeamRating
	history []models.RatingHistory
}

func NewMemoryRatingStore() *MemoryRatingStore {
	return &MemoryRatingStore{
		players: make(map[uuid.UUID]models.PlayerRating),
		teams:   make(map[pairKey]models.TeamRating),
	}
}

func (s *MemoryRatingStore) GetPlayerRating(playerID uuid.UUID) (*models.PlayerRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rating, ok := s.players[playerID]
	if !ok {
		return nil, nil
	}
	return &rating, nil
}

func (s *MemoryRatingStore) UpsertPlayerRating(playerID uuid.UUID, mu, sigma float64, gamesPlayed int) (*models.PlayerRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rating := models.PlayerRating{
		PlayerID:    playerID,
		Mu:          mu,
		Sigma:       sigma,
		GamesPlayed: gamesPlayed,
	}
	s.players[playerID] = rating

	return &rating, nil
}

func (s *MemoryRatingStore) ListTopPlayers(limit int) ([]models.PlayerRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := make([]models.PlayerRating, 0, len(s.players))
	for _, rating := range s.players {
		ratings = append(ratings, rating)
	}

	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].Mu != ratings[j].Mu {
			return ratings[i].Mu > ratings[j].Mu
		}
		return ratings[i].PlayerID.String() < ratings[j].PlayerID.String()
	})

	if limit >= 0 && len(ratings) > limit {
		ratings = ratings[:limit]
	}
	return ratings, nil
}

func (s *MemoryRatingStore) GetTeamRating(playerA, playerB uuid.UUID) (*models.TeamRating, error) {
	a, b := models.CanonicalPair(playerA, playerB)

	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[pairKey{a, b}]
	if !ok {
		return nil, nil
	}
	return &team, nil
}

func (s *MemoryRatingStore) UpsertTeamRating(playerA, playerB uuid.UUID, mu, sigma float64) (*models.TeamRating, error) {
	a, b := models.CanonicalPair(playerA, playerB)

	s.mu.Lock()
	defer s.mu.Unlock()

	gamesPlayed := 1
	if existing, ok := s.teams[pairKey{a, b}]; ok {
		gamesPlayed = existing.GamesPlayed + 1
	}

	team := models.TeamRating{
		PlayerA:     a,
		PlayerB:     b,
		Mu:          mu,
		Sigma:       sigma,
		GamesPlayed: gamesPlayed,
	}
	s.teams[pairKey{a, b}] = team

	return &team, nil
}

func (s *MemoryRatingStore) ListTeamsForPlayer(playerID uuid.UUID) ([]models.TeamRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var teams []models.TeamRating
	for _, team := range s.teams {
		if team.PlayerA == playerID || team.PlayerB == playerID {
			teams = append(teams, team)
		}
	}

	sortTeamsByKey(teams)
	return teams, nil
}

func (s *MemoryRatingStore) ListTeamsAboveGamesThreshold(minGames int) ([]models.TeamRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var teams []models.TeamRating
	for _, team := range s.teams {
		if team.GamesPlayed >= minGames {
			teams = append(teams, team)
		}
	}

	sortTeamsByMu(teams)
	return teams, nil
}

func (s *MemoryRatingStore) ListTopTeams(limit int) ([]models.TeamRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]models.TeamRating, 0, len(s.teams))
	for _, team := range s.teams {
		teams = append(teams, team)
	}

	sortTeamsByMu(teams)
	if limit >= 0 && len(teams) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}

func (s *MemoryRatingStore) AppendRatingHistory(entry models.RatingHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, entry)
	return nil
}

// RatingHistory returns a copy of the appended history entries.
func (s *MemoryRatingStore) RatingHistory() []models.RatingHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.RatingHistory, len(s.history))
	copy(out, s.history)
	return out
}

func sortTeamsByKey(teams []models.TeamRating) {
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].PlayerA != teams[j].PlayerA {
			return teams[i].PlayerA.String() < teams[j].PlayerA.String()
		}
		return teams[i].PlayerB.String() < teams[j].PlayerB.String()
	})
}

func sortTeamsByMu(teams []models.TeamRating) {
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Mu != teams[j].Mu {
			return teams[i].Mu > teams[j].Mu
		}
		if teams[i].PlayerA != teams[j].PlayerA {
			return teams[i].PlayerA.String() < teams[j].PlayerA.String()
		}
		return teams[i].PlayerB.String() < teams[j].PlayerB.String()
	})
}
