package http

import (
	"net/http"

	"github.com/tractorclub/levelboard/internal/archive"
	"github.com/tractorclub/levelboard/internal/config"
	"github.com/tractorclub/levelboard/internal/loader"
	"github.com/tractorclub/levelboard/internal/metrics"
	"github.com/tractorclub/levelboard/internal/notifier"
)

type Server struct {
	Loader         loader.Interface
	Archive        archive.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
