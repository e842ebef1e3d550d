package league

// LeagueStore defines the interface for interacting with the league's data.
// ListPlayers and ListMatches together form the data-source contract consumed
// by the rankings core.
type LeagueStore interface {
	CreatePlayer(name string) (Player, error)
	GetPlayer(id int64) (Player, error)
	ListPlayers() ([]Player, error)

	CreateSeason(s NewSeason) (Season, error)
	GetSeason(id int64) (Season, error)
	ListSeasons() ([]Season, error)
	// CurrentSeason returns the active season with the latest start date, or
	// nil when no season is active.
	CurrentSeason() (*Season, error)
	EndSeason(id int64, endDate, endedBy string) (Season, error)

	RecordMatch(m NewMatch) (Match, error)
	GetMatch(id int64) (Match, error)
	// ListMatches returns matches in the given scope ordered by played_on
	// descending, then by id descending (most recently recorded first).
	ListMatches(filter MatchFilter) ([]Match, error)
}
