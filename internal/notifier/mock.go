package notifier

import (
	"sync"

	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/rankings"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendMatchResultFunc   func(match *league.Match, names map[int64]string, dryRun bool) error
	SendSeasonSummaryFunc func(season league.Season, standings []rankings.Entry, dryRun bool) error

	// Call records
	SendMatchResultCalls   []*league.Match
	SendSeasonSummaryCalls []league.Season
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendMatchResult(match *league.Match, names map[int64]string, dryRun bool) error {
	m.mu.Lock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, match)
	m.mu.Unlock()
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(match, names, dryRun)
	}
	return nil
}

func (m *Mock) SendSeasonSummary(season league.Season, standings []rankings.Entry, dryRun bool) error {
	m.mu.Lock()
	m.SendSeasonSummaryCalls = append(m.SendSeasonSummaryCalls, season)
	m.mu.Unlock()
	if m.SendSeasonSummaryFunc != nil {
		return m.SendSeasonSummaryFunc(season, standings, dryRun)
	}
	return nil
}
