package rankings

import (
	"math"
	"sort"

	"github.com/minhvu/shuttletrack/internal/league"
)

// AggregateStats computes one PlayerStat per roster player from the matches
// in scope. Players absent from every match get an all-zero row. The result
// is ordered by points descending, then win percentage descending, then name
// ascending. Pure function of its inputs.
func AggregateStats(players []league.Player, matches []league.Match) []PlayerStat {
	stats := make([]PlayerStat, 0, len(players))
	for _, p := range players {
		stat := PlayerStat{ID: p.ID, Name: p.Name}
		for i := range matches {
			won, played := matches[i].Won(p.ID)
			if !played {
				continue
			}
			stat.TotalMatches++
			if won {
				stat.Wins++
			} else {
				stat.Losses++
			}
		}
		stat.Points = stat.Wins*PointsPerWin + stat.Losses*PointsPerLoss
		stat.WinPercentage = winPercentage(stat.Wins, stat.Losses)
		stat.MoneyLost = int64(stat.Losses) * MoneyLostPerLoss
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Points != stats[j].Points {
			return stats[i].Points > stats[j].Points
		}
		if stats[i].WinPercentage != stats[j].WinPercentage {
			return stats[i].WinPercentage > stats[j].WinPercentage
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// winPercentage returns wins/(wins+losses)*100 rounded half-up to one
// decimal place, or 0 when no matches were decided.
func winPercentage(wins, losses int) float64 {
	decided := wins + losses
	if decided == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(decided)*1000) / 10
}
