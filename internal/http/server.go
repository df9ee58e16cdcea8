package http

import (
	"net/http"

	"github.com/tractorclub/levelboard/internal/archive"
	"github.com/tractorclub/levelboard/internal/config"
	"github.com/tractorclub/levelboard/internal/loader"
	"github.com/tractorclub/levelboard/internal/metrics"
	"github.com/tractorclub/levelboard/internal/notifier"
)

func NewServer(gameLoader loader.Interface, store archive.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Loader:         gameLoader,
		Archive:        store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/games", Chain(s.GamesHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboards", Chain(s.LeaderboardsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/player", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/interactions", Chain(s.InteractionsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/global", Chain(s.GlobalStatsHandler(), paramsMiddleware))
	s.Router.Handle("/refresh", Chain(s.RefreshHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearCacheHandler(), paramsMiddleware))
	s.Router.Handle("/notify/leaderboard", Chain(s.NotifyLeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/notify/player", Chain(s.NotifyPlayerHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
