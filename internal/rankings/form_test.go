package rankings_test

import (
	"testing"

	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/rankings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentFormNewestFirst(t *testing.T) {
	matches := []league.Match{
		solo(1, 1, 2, 1, "2024-01-05"),
		solo(2, 1, 2, 2, "2024-01-07"),
		solo(3, 1, 2, 1, "2024-01-06"),
	}

	form := rankings.RecentForm(matches, 1, 5)
	require.Len(t, form, 3)
	assert.Equal(t, rankings.FormEntry{Result: "loss", PlayedOn: "2024-01-07"}, form[0])
	assert.Equal(t, rankings.FormEntry{Result: "win", PlayedOn: "2024-01-06"}, form[1])
	assert.Equal(t, rankings.FormEntry{Result: "win", PlayedOn: "2024-01-05"}, form[2])
}

func TestRecentFormSameDayTieBreaksOnRecordingOrder(t *testing.T) {
	// Two matches on the same day: the higher id was recorded later and
	// must come first.
	matches := []league.Match{
		solo(10, 1, 2, 1, "2024-01-05"),
		solo(11, 1, 2, 2, "2024-01-05"),
	}

	form := rankings.RecentForm(matches, 1, 5)
	require.Len(t, form, 2)
	assert.Equal(t, "loss", form[0].Result)
	assert.Equal(t, "win", form[1].Result)
}

func TestRecentFormTruncatesToLimit(t *testing.T) {
	var matches []league.Match
	for i := 1; i <= 8; i++ {
		matches = append(matches, solo(int64(i), 1, 2, 1, "2024-01-05"))
	}

	form := rankings.RecentForm(matches, 1, 3)
	assert.Len(t, form, 3)

	form = rankings.RecentForm(matches, 1, 20)
	assert.Len(t, form, 8)
}

func TestRecentFormDefaultLimit(t *testing.T) {
	var matches []league.Match
	for i := 1; i <= 10; i++ {
		matches = append(matches, solo(int64(i), 1, 2, 1, "2024-01-05"))
	}

	form := rankings.RecentForm(matches, 1, 0)
	assert.Len(t, form, rankings.DefaultFormSize)
}

func TestRecentFormSkipsOtherPlayers(t *testing.T) {
	matches := []league.Match{
		solo(1, 1, 2, 1, "2024-01-05"),
		solo(2, 3, 4, 1, "2024-01-06"),
	}

	form := rankings.RecentForm(matches, 1, 5)
	require.Len(t, form, 1)
	assert.Equal(t, "2024-01-05", form[0].PlayedOn)

	assert.Empty(t, rankings.RecentForm(matches, 99, 5))
}
