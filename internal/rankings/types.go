package rankings

import (
	"fmt"
	"time"
)

// Scoring and cache policy for the league.
const (
	// Points awarded per decided match: showing up for a loss still pays one.
	PointsPerWin  = 4
	PointsPerLoss = 1

	// Flat kitty contribution per lost match.
	MoneyLostPerLoss = 20000

	// Number of recent outcomes reported per player.
	DefaultFormSize = 5
)

// Cache TTL per scope. Lifetime rankings change slowly relative to request
// volume, season standings move during active play, and a past date's data
// essentially never changes.
const (
	TTLLifetime = 10 * time.Minute
	TTLSeason   = 3 * time.Minute
	TTLDate     = 15 * time.Minute
)

// KeyLifetime is the cache key for the lifetime scope.
const KeyLifetime = "rankings:lifetime"

// SeasonKey returns the cache key for a season scope.
func SeasonKey(seasonID int64) string {
	return fmt.Sprintf("rankings:season:%d", seasonID)
}

// DateKey returns the cache key for a specific-date scope. The date must be
// in YYYY-MM-DD form, validated at the boundary.
func DateKey(date string) string {
	return "rankings:date:" + date
}

// Result values for a form entry.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// PlayerStat is one player's aggregated record within a scope.
type PlayerStat struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	TotalMatches  int     `json:"total_matches"`
	Points        int     `json:"points"`
	WinPercentage float64 `json:"win_percentage"`
	MoneyLost     int64   `json:"money_lost"`
}

// FormEntry is a single recent outcome for one player.
type FormEntry struct {
	Result   string `json:"result"`
	PlayedOn string `json:"play_date"`
}

// Entry is a ranked player: aggregated stats plus recent form. Form is
// additive, it never affects the ranking order.
type Entry struct {
	PlayerStat
	Form []FormEntry `json:"form"`
}

// Result is the outcome of a ranking query: the ordered entries, the cache
// key the scope mapped to, and whether the entries came from the cache.
type Result struct {
	Entries []Entry
	Key     string
	Hit     bool
}
