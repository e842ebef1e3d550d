package league

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

func (s *store) CreatePlayer(name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE name = ?)", name).Scan(&exists)
	if err != nil {
		return Player{}, fmt.Errorf("failed to check player name: %w", err)
	}
	if exists {
		return Player{}, ErrDuplicateName
	}

	res, err := s.db.Exec("INSERT INTO players (name) VALUES (?)", name)
	if err != nil {
		return Player{}, fmt.Errorf("failed to insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Player{}, fmt.Errorf("failed to read player id: %w", err)
	}
	log.Info("Added new player", "playerID", id, "name", name)
	return s.getPlayerLocked(id)
}

func (s *store) GetPlayer(id int64) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getPlayerLocked(id)
}

func (s *store) getPlayerLocked(id int64) (Player, error) {
	var p Player
	err := s.db.QueryRow("SELECT id, name, created_at FROM players WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return Player{}, ErrNotFound
	}
	if err != nil {
		return Player{}, fmt.Errorf("failed to query player: %w", err)
	}
	return p, nil
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, created_at FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) CreateSeason(ns NewSeason) (Season, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"INSERT INTO seasons (name, start_date, auto_end, description) VALUES (?, ?, ?, ?)",
		ns.Name, ns.StartDate, ns.AutoEnd, ns.Description,
	)
	if err != nil {
		return Season{}, fmt.Errorf("failed to insert season: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Season{}, fmt.Errorf("failed to read season id: %w", err)
	}
	log.Info("Created season", "seasonID", id, "name", ns.Name, "startDate", ns.StartDate)
	return s.getSeasonLocked(id)
}

const seasonColumns = "id, name, start_date, end_date, is_active, auto_end, description, created_at, ended_at, ended_by"

func (s *store) scanSeason(scanner interface{ Scan(...any) error }) (Season, error) {
	var season Season
	var endDate, description, endedBy sql.NullString
	var endedAt sql.NullInt64

	err := scanner.Scan(
		&season.ID, &season.Name, &season.StartDate, &endDate, &season.IsActive,
		&season.AutoEnd, &description, &season.CreatedAt, &endedAt, &endedBy,
	)
	if err != nil {
		return Season{}, err
	}
	if endDate.Valid {
		season.EndDate = &endDate.String
	}
	if description.Valid {
		season.Description = &description.String
	}
	if endedAt.Valid {
		season.EndedAt = &endedAt.Int64
	}
	if endedBy.Valid {
		season.EndedBy = &endedBy.String
	}
	return season, nil
}

func (s *store) GetSeason(id int64) (Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getSeasonLocked(id)
}

func (s *store) getSeasonLocked(id int64) (Season, error) {
	row := s.db.QueryRow("SELECT "+seasonColumns+" FROM seasons WHERE id = ?", id)
	season, err := s.scanSeason(row)
	if err == sql.ErrNoRows {
		return Season{}, ErrNotFound
	}
	if err != nil {
		return Season{}, fmt.Errorf("failed to query season: %w", err)
	}
	return season, nil
}

func (s *store) ListSeasons() ([]Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + seasonColumns + " FROM seasons ORDER BY start_date DESC, id DESC")
	if err != nil {
		log.Error("Failed to query seasons", "error", err)
		return nil, err
	}
	defer rows.Close()

	var seasons []Season
	for rows.Next() {
		season, err := s.scanSeason(rows)
		if err != nil {
			log.Error("Failed to scan season row", "error", err)
			continue
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

func (s *store) CurrentSeason() (*Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT " + seasonColumns + " FROM seasons WHERE is_active = 1 ORDER BY start_date DESC, id DESC LIMIT 1")
	season, err := s.scanSeason(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query current season: %w", err)
	}
	return &season, nil
}

func (s *store) EndSeason(id int64, endDate, endedBy string) (Season, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE seasons SET is_active = 0, end_date = ?, ended_at = unixepoch(), ended_by = ? WHERE id = ? AND is_active = 1",
		endDate, endedBy, id,
	)
	if err != nil {
		return Season{}, fmt.Errorf("failed to end season: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Season{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return Season{}, ErrNotFound
	}
	log.Info("Ended season", "seasonID", id, "endedBy", endedBy)
	return s.getSeasonLocked(id)
}

func (s *store) RecordMatch(nm NewMatch) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT INTO matches (season_id, played_on, match_type, player1_id, player2_id, player3_id, player4_id, score_team1, score_team2, winning_team)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nm.SeasonID, nm.PlayedOn, nm.MatchType, nm.Player1ID, nm.Player2ID, nm.Player3ID, nm.Player4ID,
		nm.ScoreTeam1, nm.ScoreTeam2, nm.WinningTeam,
	)
	if err != nil {
		return Match{}, fmt.Errorf("failed to insert match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Match{}, fmt.Errorf("failed to read match id: %w", err)
	}
	log.Info("Recorded match", "matchID", id, "seasonID", nm.SeasonID, "playedOn", nm.PlayedOn, "type", nm.MatchType)
	return s.getMatchLocked(id)
}

const matchColumns = "id, season_id, played_on, match_type, player1_id, player2_id, player3_id, player4_id, score_team1, score_team2, winning_team, created_at"

func (s *store) scanMatch(scanner interface{ Scan(...any) error }) (Match, error) {
	var m Match
	var p2, p4 sql.NullInt64

	err := scanner.Scan(
		&m.ID, &m.SeasonID, &m.PlayedOn, &m.MatchType, &m.Player1ID, &p2, &m.Player3ID, &p4,
		&m.ScoreTeam1, &m.ScoreTeam2, &m.WinningTeam, &m.CreatedAt,
	)
	if err != nil {
		return Match{}, err
	}
	if p2.Valid {
		m.Player2ID = &p2.Int64
	}
	if p4.Valid {
		m.Player4ID = &p4.Int64
	}
	return m, nil
}

func (s *store) GetMatch(id int64) (Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMatchLocked(id)
}

func (s *store) getMatchLocked(id int64) (Match, error) {
	row := s.db.QueryRow("SELECT "+matchColumns+" FROM matches WHERE id = ?", id)
	m, err := s.scanMatch(row)
	if err == sql.ErrNoRows {
		return Match{}, ErrNotFound
	}
	if err != nil {
		return Match{}, fmt.Errorf("failed to query match: %w", err)
	}
	return m, nil
}

func (s *store) ListMatches(filter MatchFilter) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var conds []string
	var args []any
	if filter.SeasonID != nil {
		conds = append(conds, "season_id = ?")
		args = append(args, *filter.SeasonID)
	}
	if filter.OnDate != nil {
		conds = append(conds, "played_on = ?")
		args = append(args, *filter.OnDate)
	}
	if filter.OnOrBefore != nil {
		conds = append(conds, "played_on <= ?")
		args = append(args, *filter.OnOrBefore)
	}

	query := "SELECT " + matchColumns + " FROM matches"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	// Most recent first; same-day matches ordered by recording order.
	query += " ORDER BY played_on DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := s.scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
