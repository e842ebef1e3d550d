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

type Server struct {
	Store          league.LeagueStore
	Rankings       *rankings.Service
	Auth           *auth.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
