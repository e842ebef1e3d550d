package http

import (
	"net/http"

	"github.com/minhvu/shuttletrack/internal/auth"
	"github.com/minhvu/shuttletrack/internal/config"
	"github.com/minhvu/shuttletrack/internal/league"
	"github.com/minhvu/shuttletrack/internal/metrics"
	"github.com/minhvu/shuttletrack/internal/notifier"
	"github.com/minhvu/shuttletrack/internal/pubsub"
	"github.com/minhvu/shuttletrack/internal/rankings"
)

func NewServer(store league.LeagueStore, rankingsSvc *rankings.Service, authSvc *auth.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Rankings:       rankingsSvc,
		Auth:           authSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	authed := s.authMiddleware()

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /auth/register", Chain(s.RegisterHandler(), paramsMiddleware))
	s.Router.Handle("POST /auth/login", Chain(s.LoginHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /players/{playerID}/form", Chain(s.PlayerFormHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /seasons", Chain(s.ListSeasonsHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /seasons", Chain(s.CreateSeasonHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /seasons/current", Chain(s.CurrentSeasonHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /seasons/{seasonID}/end", Chain(s.EndSeasonHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /matches", Chain(s.RecordMatchHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /rankings/lifetime", Chain(s.LifetimeRankingsHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /rankings/season/{seasonID}", Chain(s.SeasonRankingsHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /rankings/date/{date}", Chain(s.DateRankingsHandler(), paramsMiddleware, authed))

	// Pub/Sub push endpoint, called by the subscription, not by users.
	s.Router.Handle("POST /pubsub/notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
