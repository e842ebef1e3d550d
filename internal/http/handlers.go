package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/minhvu/shuttletrack/internal/auth"
	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/pubsub"
	"github.com/minhvu/shuttletrack/internal/rankings"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Username == "" || len(req.Password) < 8 {
			http.Error(w, "username and a password of at least 8 characters are required", http.StatusBadRequest)
			return
		}

		user, err := s.Auth.Register(req.Username, req.Password)
		if errors.Is(err, auth.ErrUsernameTaken) {
			http.Error(w, "Username already taken", http.StatusConflict)
			return
		}
		if err != nil {
			log.Error("Failed to register user", "error", err, "username", req.Username)
			http.Error(w, "Failed to register", http.StatusInternalServerError)
			return
		}

		respondJSON(w, http.StatusCreated, map[string]any{
			"id":       user.ID,
			"username": user.Username,
		})
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		token, err := s.Auth.Login(req.Username, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		if err != nil {
			log.Error("Failed to log in user", "error", err, "username", req.Username)
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers()
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		if players == nil {
			players = []league.Player{}
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "Player name is required", http.StatusBadRequest)
			return
		}

		player, err := s.Store.CreatePlayer(req.Name)
		if errors.Is(err, league.ErrDuplicateName) {
			http.Error(w, "Player name already exists", http.StatusConflict)
			return
		}
		if err != nil {
			log.Error("Failed to create player", "error", err, "name", req.Name)
			http.Error(w, "Failed to create player", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, player)
	}
}

// PlayerFormHandler serves one player's recent outcomes. Scope is selected by
// at most one of the query parameters 'season', 'date' (exact day), or 'asof'
// (everything up to and including the day).
func (s *Server) PlayerFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := parsePositiveID(r.PathValue("playerID"))
		if err != nil {
			http.Error(w, "Invalid player id: "+err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := s.Store.GetPlayer(playerID); errors.Is(err, league.ErrNotFound) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		} else if err != nil {
			log.Error("Failed to look up player", "error", err, "playerID", playerID)
			http.Error(w, "Failed to look up player", http.StatusInternalServerError)
			return
		}

		var filter league.MatchFilter
		scopes := 0
		if raw := r.URL.Query().Get("season"); raw != "" {
			seasonID, err := parsePositiveID(raw)
			if err != nil {
				http.Error(w, "Invalid season: "+err.Error(), http.StatusBadRequest)
				return
			}
			filter.SeasonID = &seasonID
			scopes++
		}
		if raw := r.URL.Query().Get("date"); raw != "" {
			date, err := parseDate(raw)
			if err != nil {
				http.Error(w, "Invalid date: "+err.Error(), http.StatusBadRequest)
				return
			}
			filter.OnDate = &date
			scopes++
		}
		if raw := r.URL.Query().Get("asof"); raw != "" {
			date, err := parseDate(raw)
			if err != nil {
				http.Error(w, "Invalid asof date: "+err.Error(), http.StatusBadRequest)
				return
			}
			filter.OnOrBefore = &date
			scopes++
		}
		if scopes > 1 {
			http.Error(w, "At most one of season, date, asof may be set", http.StatusBadRequest)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := parsePositiveID(raw)
			if err != nil {
				http.Error(w, "Invalid limit: "+err.Error(), http.StatusBadRequest)
				return
			}
			limit = int(n)
		}

		form, err := s.Rankings.PlayerForm(playerID, filter, limit)
		if err != nil {
			log.Error("Failed to compute player form", "error", err, "playerID", playerID)
			http.Error(w, "Failed to compute form", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, form)
	}
}

func (s *Server) ListSeasonsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasons, err := s.Store.ListSeasons()
		if err != nil {
			log.Error("Failed to get seasons from store", "error", err)
			http.Error(w, "Failed to get seasons", http.StatusInternalServerError)
			return
		}
		if seasons == nil {
			seasons = []league.Season{}
		}
		respondJSON(w, http.StatusOK, seasons)
	}
}

func (s *Server) CreateSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req league.NewSeason
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "Season name is required", http.StatusBadRequest)
			return
		}
		if _, err := parseDate(req.StartDate); err != nil {
			http.Error(w, "Invalid start_date: "+err.Error(), http.StatusBadRequest)
			return
		}

		season, err := s.Store.CreateSeason(req)
		if err != nil {
			log.Error("Failed to create season", "error", err, "name", req.Name)
			http.Error(w, "Failed to create season", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, season)
	}
}

func (s *Server) CurrentSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := s.Store.CurrentSeason()
		if err != nil {
			log.Error("Failed to get current season", "error", err)
			http.Error(w, "Failed to get current season", http.StatusInternalServerError)
			return
		}
		if season == nil {
			http.Error(w, "No active season", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, season)
	}
}

func (s *Server) EndSeasonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := parsePositiveID(r.PathValue("seasonID"))
		if err != nil {
			http.Error(w, "Invalid season id: "+err.Error(), http.StatusBadRequest)
			return
		}

		endDate := time.Now().Format("2006-01-02")
		var req struct {
			EndDate string `json:"end_date"`
		}
		// Body is optional; an empty body keeps today's date.
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.EndDate != "" {
			if endDate, err = parseDate(req.EndDate); err != nil {
				http.Error(w, "Invalid end_date: "+err.Error(), http.StatusBadRequest)
				return
			}
		}

		endedBy := "unknown"
		if claims := claimsFromContext(r); claims != nil {
			endedBy = claims.Username
		}

		season, err := s.Store.EndSeason(seasonID, endDate, endedBy)
		if errors.Is(err, league.ErrNotFound) {
			http.Error(w, "No active season with that id", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Failed to end season", "error", err, "seasonID", seasonID)
			http.Error(w, "Failed to end season", http.StatusInternalServerError)
			return
		}

		// Post the final standings; the season result is already committed,
		// so a notification failure only gets logged.
		if result, err := s.Rankings.BySeason(seasonID); err != nil {
			log.Error("Failed to compute final standings", "error", err, "seasonID", seasonID)
		} else if err := s.Notifier.SendSeasonSummary(season, result.Entries, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send season summary", "error", err, "seasonID", seasonID)
		}

		respondJSON(w, http.StatusOK, season)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter league.MatchFilter
		if raw := r.URL.Query().Get("season"); raw != "" {
			seasonID, err := parsePositiveID(raw)
			if err != nil {
				http.Error(w, "Invalid season: "+err.Error(), http.StatusBadRequest)
				return
			}
			filter.SeasonID = &seasonID
		}
		if raw := r.URL.Query().Get("date"); raw != "" {
			date, err := parseDate(raw)
			if err != nil {
				http.Error(w, "Invalid date: "+err.Error(), http.StatusBadRequest)
				return
			}
			filter.OnDate = &date
		}

		matches, err := s.Store.ListMatches(filter)
		if err != nil {
			log.Error("Failed to get matches from store", "error", err)
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			return
		}
		if matches == nil {
			matches = []league.Match{}
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) RecordMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req league.NewMatch
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validateNewMatch(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := s.Store.GetSeason(req.SeasonID); errors.Is(err, league.ErrNotFound) {
			http.Error(w, "Season not found", http.StatusBadRequest)
			return
		} else if err != nil {
			log.Error("Failed to look up season", "error", err, "seasonID", req.SeasonID)
			http.Error(w, "Failed to look up season", http.StatusInternalServerError)
			return
		}
		for _, playerID := range matchPlayerIDs(req) {
			if _, err := s.Store.GetPlayer(playerID); errors.Is(err, league.ErrNotFound) {
				http.Error(w, fmt.Sprintf("Player %d not found", playerID), http.StatusBadRequest)
				return
			} else if err != nil {
				log.Error("Failed to look up player", "error", err, "playerID", playerID)
				http.Error(w, "Failed to look up player", http.StatusInternalServerError)
				return
			}
		}

		match, err := s.Store.RecordMatch(req)
		if err != nil {
			log.Error("Failed to record match", "error", err)
			http.Error(w, "Failed to record match", http.StatusInternalServerError)
			return
		}
		s.Metrics.IncMatchesRecorded()

		// Result notification is decoupled via Pub/Sub; a publish failure
		// must not fail the recorded match.
		if err := s.pubsub.SendMessage(pubsub.TopicMatchRecorded, match); err != nil {
			log.Error("Failed to publish match-recorded event", "error", err, "matchID", match.ID)
		}

		respondJSON(w, http.StatusCreated, match)
	}
}

// matchPlayerIDs returns the occupied player slots of a new match.
func matchPlayerIDs(nm league.NewMatch) []int64 {
	ids := []int64{nm.Player1ID, nm.Player3ID}
	if nm.Player2ID != nil {
		ids = append(ids, *nm.Player2ID)
	}
	if nm.Player4ID != nil {
		ids = append(ids, *nm.Player4ID)
	}
	return ids
}

// validateNewMatch enforces the boundary invariants: well-formed date, known
// match type, correctly occupied slots, distinct players, and a winning team
// that corresponds to the higher score.
func validateNewMatch(nm league.NewMatch) error {
	if _, err := parseDate(nm.PlayedOn); err != nil {
		return fmt.Errorf("invalid played_on: %w", err)
	}
	switch nm.MatchType {
	case league.MatchTypeSolo:
		if nm.Player2ID != nil || nm.Player4ID != nil {
			return errors.New("solo matches use exactly two players (slots 1 and 3)")
		}
	case league.MatchTypeDuo:
		// Duo allows two to four players; nothing to check beyond slots.
	default:
		return fmt.Errorf("invalid match_type %q", nm.MatchType)
	}
	if nm.ScoreTeam1 < 0 || nm.ScoreTeam2 < 0 {
		return errors.New("scores must be non-negative")
	}
	if nm.ScoreTeam1 == nm.ScoreTeam2 {
		return errors.New("scores must not be equal, one team has to win")
	}
	if nm.WinningTeam != 1 && nm.WinningTeam != 2 {
		return errors.New("winning_team must be 1 or 2")
	}
	higher := 1
	if nm.ScoreTeam2 > nm.ScoreTeam1 {
		higher = 2
	}
	if nm.WinningTeam != higher {
		return errors.New("winning_team must be the team with the higher score")
	}

	ids := matchPlayerIDs(nm)
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("player %d appears more than once", id)
		}
		seen[id] = true
	}
	return nil
}

// writeRankings writes a ranking result with the cache headers.
func writeRankings(w http.ResponseWriter, result rankings.Result) {
	cacheStatus := "MISS"
	if result.Hit {
		cacheStatus = "HIT"
	}
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Cache-Key", result.Key)
	respondJSON(w, http.StatusOK, result.Entries)
}

func (s *Server) LifetimeRankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := s.Rankings.Lifetime()
		if err != nil {
			log.Error("Failed to compute lifetime rankings", "error", err)
			http.Error(w, "Failed to compute rankings", http.StatusInternalServerError)
			return
		}
		writeRankings(w, result)
	}
}

func (s *Server) SeasonRankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := parsePositiveID(r.PathValue("seasonID"))
		if err != nil {
			http.Error(w, "Invalid season id: "+err.Error(), http.StatusBadRequest)
			return
		}

		result, err := s.Rankings.BySeason(seasonID)
		if err != nil {
			log.Error("Failed to compute season rankings", "error", err, "seasonID", seasonID)
			http.Error(w, "Failed to compute rankings", http.StatusInternalServerError)
			return
		}
		writeRankings(w, result)
	}
}

func (s *Server) DateRankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := parseDate(r.PathValue("date"))
		if err != nil {
			http.Error(w, "Invalid date: "+err.Error(), http.StatusBadRequest)
			return
		}

		result, err := s.Rankings.ByDate(date)
		if err != nil {
			log.Error("Failed to compute date rankings", "error", err, "date", date)
			http.Error(w, "Failed to compute rankings", http.StatusInternalServerError)
			return
		}
		writeRankings(w, result)
	}
}

// NotifyResultHandler is the Pub/Sub push endpoint for match-recorded events.
func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received notify result message", "body", string(bodyBytes))

		// The push wrapper carries the base64-encoded MessagePack payload.
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var match league.Match
		if err := s.pubsub.ProcessMessage(rawData, &match); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		players, err := s.Store.ListPlayers()
		if err != nil {
			log.Error("Failed to get players for notification", "error", err)
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		names := make(map[int64]string, len(players))
		for _, p := range players {
			names[p.ID] = p.Name
		}

		if err := s.Notifier.SendMatchResult(&match, names, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify match result", "error", err, "matchID", match.ID)
			http.Error(w, "Failed to notify match result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
