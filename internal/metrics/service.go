package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RankingsCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_rankings_cache_hits_total",
			Help: "The total number of ranking requests served from the cache, per scope.",
		}, []string{"scope"}),
		RankingsCacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "league_rankings_cache_misses_total",
			Help: "The total number of ranking requests that required recomputation, per scope.",
		}, []string{"scope"}),
		RankingsComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_rankings_compute_duration_seconds",
			Help:    "The duration of ranking computations on cache misses.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matches_recorded_total",
			Help: "The total number of matches recorded.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RankingsCacheHits,
		s.RankingsCacheMisses,
		s.RankingsComputeDuration,
		s.MatchesRecorded,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRankingsCacheHit(scope string) {
	s.RankingsCacheHits.WithLabelValues(scope).Inc()
}

func (s *Service) IncRankingsCacheMiss(scope string) {
	s.RankingsCacheMisses.WithLabelValues(scope).Inc()
}

func (s *Service) ObserveRankingsComputeDuration(duration float64) {
	s.RankingsComputeDuration.Observe(duration)
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
