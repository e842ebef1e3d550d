package notifier

import (
	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/rankings"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For freshly recorded matches. names maps player ids to display names.
	SendMatchResult(match *league.Match, names map[int64]string, dryRun bool) error
	// For a season that was just ended: the final standings.
	SendSeasonSummary(season league.Season, standings []rankings.Entry, dryRun bool) error
}
