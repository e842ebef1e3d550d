package rankings

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/minhvu/shuttletrack/internal/cache"
	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/metrics"
)

// Service assembles ranked player lists for a scope, memoized in a TTL cache
// keyed by scope. The cache is an injected collaborator so the core stays
// testable in isolation.
type Service struct {
	store    league.LeagueStore
	cache    *cache.Store[[]Entry]
	metrics  metrics.Metrics
	formSize int
}

// New creates a ranking service.
func New(store league.LeagueStore, c *cache.Store[[]Entry], m metrics.Metrics) *Service {
	return &Service{
		store:    store,
		cache:    c,
		metrics:  m,
		formSize: DefaultFormSize,
	}
}

// Lifetime returns the all-time rankings.
func (s *Service) Lifetime() (Result, error) {
	return s.rankings(KeyLifetime, TTLLifetime, "lifetime", league.MatchFilter{})
}

// BySeason returns the rankings for one season. The season id is validated at
// the boundary; an unknown season simply yields an all-zero roster.
func (s *Service) BySeason(seasonID int64) (Result, error) {
	return s.rankings(SeasonKey(seasonID), TTLSeason, "season", league.MatchFilter{SeasonID: &seasonID})
}

// ByDate returns the rankings for matches played exactly on the given date
// (YYYY-MM-DD, validated at the boundary).
func (s *Service) ByDate(date string) (Result, error) {
	return s.rankings(DateKey(date), TTLDate, "date", league.MatchFilter{OnDate: &date})
}

func (s *Service) rankings(key string, ttl time.Duration, scope string, filter league.MatchFilter) (Result, error) {
	if entries, ok := s.cache.Get(key); ok {
		s.metrics.IncRankingsCacheHit(scope)
		log.Debug("Rankings cache hit", "key", key)
		return Result{Entries: entries, Key: key, Hit: true}, nil
	}
	s.metrics.IncRankingsCacheMiss(scope)

	start := time.Now()
	entries, err := s.compute(filter)
	if err != nil {
		return Result{}, err
	}
	s.metrics.ObserveRankingsComputeDuration(time.Since(start).Seconds())

	s.cache.Set(key, entries, ttl)
	log.Debug("Rankings computed", "key", key, "players", len(entries), "ttl", ttl)
	return Result{Entries: entries, Key: key, Hit: false}, nil
}

// compute runs the full pipeline: aggregate stats, attach per-player form,
// preserve the stats ordering.
func (s *Service) compute(filter league.MatchFilter) ([]Entry, error) {
	players, err := s.store.ListPlayers()
	if err != nil {
		return nil, err
	}
	matches, err := s.store.ListMatches(filter)
	if err != nil {
		return nil, err
	}

	stats := AggregateStats(players, matches)
	entries := make([]Entry, 0, len(stats))
	for _, stat := range stats {
		entries = append(entries, Entry{
			PlayerStat: stat,
			Form:       RecentForm(matches, stat.ID, s.formSize),
		})
	}
	return entries, nil
}

// PlayerForm returns one player's recent outcomes for an arbitrary scope.
// Not cached: it is a per-player slice of what the ranking pipeline computes.
func (s *Service) PlayerForm(playerID int64, filter league.MatchFilter, limit int) ([]FormEntry, error) {
	matches, err := s.store.ListMatches(filter)
	if err != nil {
		return nil, err
	}
	return RecentForm(matches, playerID, limit), nil
}
