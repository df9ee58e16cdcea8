package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                    sync.Mutex
	loaderFetches         int
	cacheHits             int
	fetchFailures         int
	snapshotFallbacks     int
	statsComputeDurations []float64
	slackNotifSent        int
	slackNotifFailed      int
	startupTime           float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		statsComputeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncLoaderFetches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaderFetches++
}

func (m *Mock) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Mock) IncFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchFailures++
}

func (m *Mock) IncSnapshotFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotFallbacks++
}

func (m *Mock) ObserveStatsComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsComputeDurations = append(m.statsComputeDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// LoaderFetches returns the recorded fetch count.
func (m *Mock) LoaderFetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaderFetches
}

// CacheHits returns the recorded cache hit count.
func (m *Mock) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// FetchFailures returns the recorded failure count.
func (m *Mock) FetchFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchFailures
}

// SnapshotFallbacks returns the recorded fallback count.
func (m *Mock) SnapshotFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotFallbacks
}

// SlackNotifSent returns the recorded sent count.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}
