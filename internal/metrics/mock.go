package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	cacheHits        map[string]int
	cacheMisses      map[string]int
	computeDurations []float64
	matchesRecorded  int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		cacheHits:        make(map[string]int),
		cacheMisses:      make(map[string]int),
		computeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRankingsCacheHit(scope string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits[scope]++
}

func (m *Mock) IncRankingsCacheMiss(scope string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses[scope]++
}

func (m *Mock) ObserveRankingsComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computeDurations = append(m.computeDurations, duration)
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// CacheHits returns the recorded hit count for a scope.
func (m *Mock) CacheHits(scope string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits[scope]
}

// CacheMisses returns the recorded miss count for a scope.
func (m *Mock) CacheMisses(scope string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses[scope]
}

// MatchesRecorded returns the recorded match counter.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}
