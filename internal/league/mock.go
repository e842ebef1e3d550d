package league

import (
	"sync"
)

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreatePlayerFunc  func(name string) (Player, error)
	GetPlayerFunc     func(id int64) (Player, error)
	ListPlayersFunc   func() ([]Player, error)
	CreateSeasonFunc  func(s NewSeason) (Season, error)
	GetSeasonFunc     func(id int64) (Season, error)
	ListSeasonsFunc   func() ([]Season, error)
	CurrentSeasonFunc func() (*Season, error)
	EndSeasonFunc     func(id int64, endDate, endedBy string) (Season, error)
	RecordMatchFunc   func(m NewMatch) (Match, error)
	GetMatchFunc      func(id int64) (Match, error)
	ListMatchesFunc   func(filter MatchFilter) ([]Match, error)

	// Call records
	CreatePlayerCalls []string
	RecordMatchCalls  []NewMatch
	ListMatchesCalls  []MatchFilter
	EndSeasonCalls    []struct {
		ID      int64
		EndDate string
		EndedBy string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreatePlayer(name string) (Player, error) {
	m.mu.Lock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, name)
	m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(name)
	}
	return Player{Name: name}, nil
}

func (m *MockStore) GetPlayer(id int64) (Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return Player{ID: id}, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) CreateSeason(s NewSeason) (Season, error) {
	if m.CreateSeasonFunc != nil {
		return m.CreateSeasonFunc(s)
	}
	return Season{Name: s.Name, StartDate: s.StartDate}, nil
}

func (m *MockStore) GetSeason(id int64) (Season, error) {
	if m.GetSeasonFunc != nil {
		return m.GetSeasonFunc(id)
	}
	return Season{ID: id}, nil
}

func (m *MockStore) ListSeasons() ([]Season, error) {
	if m.ListSeasonsFunc != nil {
		return m.ListSeasonsFunc()
	}
	return nil, nil
}

func (m *MockStore) CurrentSeason() (*Season, error) {
	if m.CurrentSeasonFunc != nil {
		return m.CurrentSeasonFunc()
	}
	return nil, nil
}

func (m *MockStore) EndSeason(id int64, endDate, endedBy string) (Season, error) {
	m.mu.Lock()
	m.EndSeasonCalls = append(m.EndSeasonCalls, struct {
		ID      int64
		EndDate string
		EndedBy string
	}{id, endDate, endedBy})
	m.mu.Unlock()
	if m.EndSeasonFunc != nil {
		return m.EndSeasonFunc(id, endDate, endedBy)
	}
	return Season{ID: id}, nil
}

func (m *MockStore) RecordMatch(nm NewMatch) (Match, error) {
	m.mu.Lock()
	m.RecordMatchCalls = append(m.RecordMatchCalls, nm)
	m.mu.Unlock()
	if m.RecordMatchFunc != nil {
		return m.RecordMatchFunc(nm)
	}
	return Match{SeasonID: nm.SeasonID, PlayedOn: nm.PlayedOn}, nil
}

func (m *MockStore) GetMatch(id int64) (Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(id)
	}
	return Match{ID: id}, nil
}

func (m *MockStore) ListMatches(filter MatchFilter) ([]Match, error) {
	m.mu.Lock()
	m.ListMatchesCalls = append(m.ListMatchesCalls, filter)
	m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(filter)
	}
	return nil, nil
}
