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
		LoaderFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tractor_loader_fetches_total",
			Help: "The total number of fresh fetches of the game log.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tractor_loader_cache_hits_total",
			Help: "The total number of loads served from the in-memory cache.",
		}),
		FetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tractor_loader_fetch_failures_total",
			Help: "The total number of game log fetches that failed.",
		}),
		SnapshotFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tractor_loader_snapshot_fallbacks_total",
			Help: "The total number of loads served from an archived snapshot after a fetch failure.",
		}),
		StatsComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tractor_stats_compute_duration_seconds",
			Help:    "The duration of a full stats computation over one deck partition.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tractor_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tractor_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tractor_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.LoaderFetches,
		s.CacheHits,
		s.FetchFailures,
		s.SnapshotFallbacks,
		s.StatsComputeDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLoaderFetches() {
	s.LoaderFetches.Inc()
}

func (s *Service) IncCacheHits() {
	s.CacheHits.Inc()
}

func (s *Service) IncFetchFailures() {
	s.FetchFailures.Inc()
}

func (s *Service) IncSnapshotFallbacks() {
	s.SnapshotFallbacks.Inc()
}

func (s *Service) ObserveStatsComputeDuration(duration float64) {
	s.StatsComputeDuration.Observe(duration)
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
