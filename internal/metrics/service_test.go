package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestServiceCounters(t *testing.T) {
	svc := NewService(prometheus.NewRegistry())

	svc.IncLoaderFetches()
	svc.IncLoaderFetches()
	svc.IncCacheHits()
	svc.IncFetchFailures()
	svc.IncSnapshotFallbacks()
	svc.IncSlackNotifSent()
	svc.IncSlackNotifFailed()
	svc.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.LoaderFetches))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.FetchFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SnapshotFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SlackNotifSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SlackNotifFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
}
