package slack

import (
	"context"
	"testing"

	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/metrics"
	"github.com/minhvu/shuttletrack/internal/rankings"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlackAPI records posted messages instead of calling Slack.
type fakeSlackAPI struct {
	calls int
	err   error
}

func (f *fakeSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "123.456", nil
}

func testMatch() *league.Match {
	p2 := int64(2)
	p4 := int64(4)
	return &league.Match{
		ID: 1, SeasonID: 1, PlayedOn: "2024-01-10", MatchType: league.MatchTypeDuo,
		Player1ID: 1, Player2ID: &p2, Player3ID: 3, Player4ID: &p4,
		ScoreTeam1: 21, ScoreTeam2: 17, WinningTeam: 1,
	}
}

func TestSendMatchResult(t *testing.T) {
	api := &fakeSlackAPI{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	names := map[int64]string{1: "An", 2: "Binh", 3: "Chi", 4: "Dung"}
	err := n.SendMatchResult(testMatch(), names, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}

func TestSendMatchResultDryRunSkipsAPI(t *testing.T) {
	api := &fakeSlackAPI{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := n.SendMatchResult(testMatch(), nil, true)
	require.NoError(t, err)
	assert.Zero(t, api.calls)
}

func TestFormatMatchResultNamesTeams(t *testing.T) {
	names := map[int64]string{1: "An", 2: "Binh", 3: "Chi", 4: "Dung"}
	msg := formatMatchResult(testMatch(), names)
	require.NotEmpty(t, msg.Blocks.BlockSet)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "An & Binh vs Chi & Dung")
}

func TestFormatSeasonSummaryStandings(t *testing.T) {
	season := league.Season{ID: 1, Name: "Spring 2024"}
	standings := []rankings.Entry{
		{PlayerStat: rankings.PlayerStat{Name: "An", Points: 9, Wins: 2, Losses: 1, WinPercentage: 66.7, MoneyLost: 20000}},
		{PlayerStat: rankings.PlayerStat{Name: "Binh", Points: 6, Wins: 1, Losses: 2, WinPercentage: 33.3, MoneyLost: 40000}},
	}

	msg := formatSeasonSummary(season, standings)
	require.Len(t, msg.Blocks.BlockSet, 3)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "1. An - 9 pts (2-1, 66.7%)")
	assert.Contains(t, section.Text.Text, "2. Binh - 6 pts (1-2, 33.3%)")
}
