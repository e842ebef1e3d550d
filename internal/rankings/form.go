package rankings

import (
	"sort"

	"github.com/minhvu/shuttletrack/internal/league"
)

// RecentForm returns the player's limit most recent outcomes within the given
// matches, newest first. Ordering is play date descending with ties broken by
// recording order descending, so two matches on the same day report the one
// recorded later first. Returns fewer than limit entries when the player
// played fewer matches.
func RecentForm(matches []league.Match, playerID int64, limit int) []FormEntry {
	if limit <= 0 {
		limit = DefaultFormSize
	}

	ordered := make([]league.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PlayedOn != ordered[j].PlayedOn {
			return ordered[i].PlayedOn > ordered[j].PlayedOn
		}
		return ordered[i].ID > ordered[j].ID
	})

	form := make([]FormEntry, 0, limit)
	for i := range ordered {
		won, played := ordered[i].Won(playerID)
		if !played {
			continue
		}
		result := ResultLoss
		if won {
			result = ResultWin
		}
		form = append(form, FormEntry{Result: result, PlayedOn: ordered[i].PlayedOn})
		if len(form) == limit {
			break
		}
	}
	return form
}
