package slack

import (
	"fmt"
	"strings"

	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/rankings"
	"github.com/slack-go/slack"
)

func playerName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("player %d", id)
}

func teamLabel(names map[int64]string, first int64, second *int64) string {
	if second == nil {
		return playerName(names, first)
	}
	return playerName(names, first) + " & " + playerName(names, *second)
}

// formatMatchResult creates the Slack message for a recorded match using Block Kit.
func formatMatchResult(match *league.Match, names map[int64]string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏸 Match recorded! 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	team1 := teamLabel(names, match.Player1ID, match.Player2ID)
	team2 := teamLabel(names, match.Player3ID, match.Player4ID)
	detailsText := fmt.Sprintf("%s vs %s\nPlayed on %s (%s)", team1, team2, match.PlayedOn, match.MatchType)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	winner := team1
	if match.WinningTeam == 2 {
		winner = team2
	}
	scoreText := fmt.Sprintf("Score: %d - %d\nWinner: %s", match.ScoreTeam1, match.ScoreTeam2, winner)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", scoreText, true, false), nil, nil))

	losers := team2
	if match.WinningTeam == 2 {
		losers = team1
	}
	contextText := slack.NewTextBlockObject("plain_text",
		fmt.Sprintf("💸 %s owe(s) %d to the kitty", losers, rankings.MoneyLostPerLoss), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// formatSeasonSummary creates the final-standings message for an ended season.
func formatSeasonSummary(season league.Season, standings []rankings.Entry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s - final standings 🏆", season.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "No matches were recorded this season.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, entry := range standings {
		lines = append(lines, fmt.Sprintf("%d. %s - %d pts (%d-%d, %.1f%%)",
			i+1, entry.Name, entry.Points, entry.Wins, entry.Losses, entry.WinPercentage))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	var totalKitty int64
	for _, entry := range standings {
		totalKitty += entry.MoneyLost
	}
	contextText := slack.NewTextBlockObject("plain_text",
		fmt.Sprintf("💸 Season kitty: %d", totalKitty), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}
