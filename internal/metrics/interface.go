package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRankingsCacheHit(scope string)
	IncRankingsCacheMiss(scope string)
	ObserveRankingsComputeDuration(duration float64)
	IncMatchesRecorded()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
