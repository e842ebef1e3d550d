package league

import (
	"database/sql"
	"errors"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a unique name is already taken.
	ErrDuplicateName = errors.New("name already exists")
)

// MatchType distinguishes 1v1 from 2v2 matches.
type MatchType string

const (
	MatchTypeSolo MatchType = "solo"
	MatchTypeDuo  MatchType = "duo"
)

// Player is a league member referenced by matches and rankings.
type Player struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Season groups matches into a standings period. The "current" season is the
// active season with the latest start date.
type Season struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	IsActive    bool    `json:"is_active"`
	AutoEnd     bool    `json:"auto_end"`
	Description *string `json:"description,omitempty"`
	CreatedAt   int64   `json:"created_at"`
	EndedAt     *int64  `json:"ended_at,omitempty"`
	EndedBy     *string `json:"ended_by,omitempty"`
}

// Match records one played match. Slots 1/2 are team 1, slots 3/4 team 2;
// slots 2 and 4 are nil for solo matches. WinningTeam is always 1 or 2 and
// must correspond to the team with the higher score (enforced at the HTTP
// boundary, not here).
type Match struct {
	ID          int64     `json:"id"`
	SeasonID    int64     `json:"season_id"`
	PlayedOn    string    `json:"played_on"`
	MatchType   MatchType `json:"match_type"`
	Player1ID   int64     `json:"player1_id"`
	Player2ID   *int64    `json:"player2_id,omitempty"`
	Player3ID   int64     `json:"player3_id"`
	Player4ID   *int64    `json:"player4_id,omitempty"`
	ScoreTeam1  int       `json:"score_team1"`
	ScoreTeam2  int       `json:"score_team2"`
	WinningTeam int       `json:"winning_team"`
	CreatedAt   int64     `json:"created_at"`
}

// OnTeam reports which team the player occupies in this match (1 or 2), or 0
// when the player is not in the match.
func (m *Match) OnTeam(playerID int64) int {
	if m.Player1ID == playerID || (m.Player2ID != nil && *m.Player2ID == playerID) {
		return 1
	}
	if m.Player3ID == playerID || (m.Player4ID != nil && *m.Player4ID == playerID) {
		return 2
	}
	return 0
}

// Won reports whether the player won this match. The second return value is
// false when the player did not take part at all.
func (m *Match) Won(playerID int64) (won, played bool) {
	team := m.OnTeam(playerID)
	if team == 0 {
		return false, false
	}
	return team == m.WinningTeam, true
}

// NewSeason holds the fields for creating a season.
type NewSeason struct {
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	AutoEnd     bool    `json:"auto_end"`
	Description *string `json:"description,omitempty"`
}

// NewMatch holds the fields for recording a match.
type NewMatch struct {
	SeasonID    int64     `json:"season_id"`
	PlayedOn    string    `json:"played_on"`
	MatchType   MatchType `json:"match_type"`
	Player1ID   int64     `json:"player1_id"`
	Player2ID   *int64    `json:"player2_id,omitempty"`
	Player3ID   int64     `json:"player3_id"`
	Player4ID   *int64    `json:"player4_id,omitempty"`
	ScoreTeam1  int       `json:"score_team1"`
	ScoreTeam2  int       `json:"score_team2"`
	WinningTeam int       `json:"winning_team"`
}

// MatchFilter selects matches for a ranking scope. Zero value means lifetime
// (no filter). OnDate matches played_on exactly; OnOrBefore matches
// played_on <= the given date ("as of" semantics). At most one of the date
// fields is set by callers.
type MatchFilter struct {
	SeasonID   *int64
	OnDate     *string
	OnOrBefore *string
}
