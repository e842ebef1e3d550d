package rankings_test

import (
	"testing"

	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/rankings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func roster(names ...string) []league.Player {
	players := make([]league.Player, len(names))
	for i, name := range names {
		players[i] = league.Player{ID: int64(i + 1), Name: name}
	}
	return players
}

// solo builds a 1v1 match between p1 (team 1) and p3 (team 2).
func solo(id, p1, p3 int64, winningTeam int, playedOn string) league.Match {
	score1, score2 := 21, 15
	if winningTeam == 2 {
		score1, score2 = 15, 21
	}
	return league.Match{
		ID: id, SeasonID: 1, PlayedOn: playedOn, MatchType: league.MatchTypeSolo,
		Player1ID: p1, Player3ID: p3,
		ScoreTeam1: score1, ScoreTeam2: score2, WinningTeam: winningTeam,
	}
}

func TestAggregateStatsZeroMatches(t *testing.T) {
	stats := rankings.AggregateStats(roster("An", "Binh"), nil)

	require.Len(t, stats, 2)
	for _, s := range stats {
		assert.Zero(t, s.Wins)
		assert.Zero(t, s.Losses)
		assert.Zero(t, s.TotalMatches)
		assert.Zero(t, s.Points)
		assert.Zero(t, s.WinPercentage)
		assert.Zero(t, s.MoneyLost)
	}
	// All-zero ties resolve by name ascending.
	assert.Equal(t, "An", stats[0].Name)
	assert.Equal(t, "Binh", stats[1].Name)
}

func TestAggregateStatsSingleMatchScenario(t *testing.T) {
	// A beats C; B sits out entirely.
	players := roster("A", "B", "C")
	matches := []league.Match{solo(1, 1, 3, 1, "2024-01-10")}

	stats := rankings.AggregateStats(players, matches)
	require.Len(t, stats, 3)

	byName := map[string]rankings.PlayerStat{}
	for _, s := range stats {
		byName[s.Name] = s
	}

	a := byName["A"]
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 0, a.Losses)
	assert.Equal(t, 1, a.TotalMatches)
	assert.Equal(t, 4, a.Points)
	assert.Equal(t, 100.0, a.WinPercentage)
	assert.Equal(t, int64(0), a.MoneyLost)

	c := byName["C"]
	assert.Equal(t, 0, c.Wins)
	assert.Equal(t, 1, c.Losses)
	assert.Equal(t, 1, c.TotalMatches)
	assert.Equal(t, 1, c.Points)
	assert.Equal(t, 0.0, c.WinPercentage)
	assert.Equal(t, int64(20000), c.MoneyLost)

	b := byName["B"]
	assert.Zero(t, b.TotalMatches)
	assert.Zero(t, b.Points)

	// Order: A (4 pts), C (1 pt), B (0 pts).
	assert.Equal(t, "A", stats[0].Name)
	assert.Equal(t, "C", stats[1].Name)
	assert.Equal(t, "B", stats[2].Name)
}

func TestAggregateStatsPointsAndMoneyFormulas(t *testing.T) {
	players := roster("An", "Binh")
	var matches []league.Match
	// An wins 3 and loses 2 against Binh.
	for i := 0; i < 3; i++ {
		matches = append(matches, solo(int64(i+1), 1, 2, 1, "2024-01-10"))
	}
	for i := 0; i < 2; i++ {
		matches = append(matches, solo(int64(i+4), 1, 2, 2, "2024-01-11"))
	}

	stats := rankings.AggregateStats(players, matches)
	for _, s := range stats {
		assert.Equal(t, s.Wins*4+s.Losses*1, s.Points)
		assert.Equal(t, int64(s.Losses)*20000, s.MoneyLost)
		assert.Equal(t, s.Wins+s.Losses, s.TotalMatches)
	}
}

func TestWinPercentageRounding(t *testing.T) {
	players := roster("An", "Binh")
	// 1 win, 2 losses: 33.333...% rounds to 33.3.
	matches := []league.Match{
		solo(1, 1, 2, 1, "2024-01-10"),
		solo(2, 1, 2, 2, "2024-01-11"),
		solo(3, 1, 2, 2, "2024-01-12"),
	}

	stats := rankings.AggregateStats(players, matches)
	byName := map[string]rankings.PlayerStat{}
	for _, s := range stats {
		byName[s.Name] = s
	}
	assert.Equal(t, 33.3, byName["An"].WinPercentage)
	assert.Equal(t, 66.7, byName["Binh"].WinPercentage)
}

func TestWinPercentageHalfUp(t *testing.T) {
	players := roster("An", "Binh")
	// 5 wins, 3 losses: 62.5% exactly, no rounding drift allowed.
	var matches []league.Match
	for i := 0; i < 5; i++ {
		matches = append(matches, solo(int64(i+1), 1, 2, 1, "2024-01-10"))
	}
	for i := 0; i < 3; i++ {
		matches = append(matches, solo(int64(i+6), 1, 2, 2, "2024-01-11"))
	}

	stats := rankings.AggregateStats(players, matches)
	byName := map[string]rankings.PlayerStat{}
	for _, s := range stats {
		byName[s.Name] = s
	}
	assert.Equal(t, 62.5, byName["An"].WinPercentage)
	assert.Equal(t, 37.5, byName["Binh"].WinPercentage)
}

func TestAggregateStatsTieBreakOrdering(t *testing.T) {
	// Three players engineered to the same point total with differing win
	// percentages, plus a name tiebreak at the bottom.
	players := roster("Zed", "Anh", "Mai", "Binh")
	matches := []league.Match{
		// Zed: 2 wins (8 pts), 100%.
		solo(1, 1, 4, 1, "2024-01-01"),
		solo(2, 1, 4, 1, "2024-01-02"),
		// Anh: 1 win, 4 losses (8 pts), 20%.
		solo(3, 2, 3, 1, "2024-01-03"),
		solo(4, 2, 3, 2, "2024-01-04"),
		solo(5, 2, 3, 2, "2024-01-05"),
		solo(6, 2, 3, 2, "2024-01-06"),
		solo(7, 2, 3, 2, "2024-01-07"),
	}

	stats := rankings.AggregateStats(players, matches)
	require.Len(t, stats, 4)
	// Mai: 4 wins 1 loss from the matches above = 17 pts, top.
	assert.Equal(t, "Mai", stats[0].Name)
	// Zed and Anh both at 8 points; higher win percentage first.
	assert.Equal(t, "Zed", stats[1].Name)
	assert.Equal(t, "Anh", stats[2].Name)
	assert.Equal(t, "Binh", stats[3].Name)

	// Re-running with identical input yields identical order.
	again := rankings.AggregateStats(players, matches)
	assert.Equal(t, stats, again)
}

func TestAggregateStatsDuoTeams(t *testing.T) {
	players := roster("An", "Binh", "Chi", "Dung")
	matches := []league.Match{{
		ID: 1, SeasonID: 1, PlayedOn: "2024-01-10", MatchType: league.MatchTypeDuo,
		Player1ID: 1, Player2ID: ptr(int64(2)), Player3ID: 3, Player4ID: ptr(int64(4)),
		ScoreTeam1: 21, ScoreTeam2: 17, WinningTeam: 1,
	}}

	stats := rankings.AggregateStats(players, matches)
	byName := map[string]rankings.PlayerStat{}
	for _, s := range stats {
		byName[s.Name] = s
	}
	assert.Equal(t, 1, byName["An"].Wins)
	assert.Equal(t, 1, byName["Binh"].Wins)
	assert.Equal(t, 1, byName["Chi"].Losses)
	assert.Equal(t, 1, byName["Dung"].Losses)
}
