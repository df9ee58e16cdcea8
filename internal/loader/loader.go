// Package loader memoizes the fetched game log for a fixed freshness
// window and keeps serving the last good table when the feed is down.
package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tractorclub/levelboard/internal/archive"
	"github.com/tractorclub/levelboard/internal/metrics"
	"github.com/tractorclub/levelboard/internal/sheets"
	"github.com/tractorclub/levelboard/internal/tractor"
)

// DefaultTTL is the freshness window of the cached game table.
const DefaultTTL = 5 * time.Minute

// Loader is a single-slot cache in front of the sheet client. The whole
// check-then-fetch transition runs under one mutex so concurrent requests
// cannot trigger duplicate fetches.
type Loader struct {
	client  sheets.Client
	archive archive.Store
	metrics metrics.Metrics
	ttl     time.Duration

	mu        sync.Mutex
	games     []tractor.GameRecord
	fetchedAt time.Time

	now func() time.Time
}

var _ Interface = (*Loader)(nil)

// New creates a Loader. The archive store may be nil, in which case fetch
// failures can only fall back to the in-memory entry.
func New(client sheets.Client, store archive.Store, metricsSvc metrics.Metrics, ttl time.Duration) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Loader{
		client:  client,
		archive: store,
		metrics: metricsSvc,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Load implements Interface.
//
// Failure never loses previously good data: a failed fetch falls back to
// the in-memory entry regardless of age, then to the newest archived
// snapshot, and only errors when neither exists.
func (l *Loader) Load(ctx context.Context, forceRefresh bool) ([]tractor.GameRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !forceRefresh && l.games != nil && l.now().Sub(l.fetchedAt) < l.ttl {
		l.metrics.IncCacheHits()
		log.Debug("Serving game log from cache", "age", l.now().Sub(l.fetchedAt))
		return l.games, nil
	}

	l.metrics.IncLoaderFetches()
	games, err := l.client.FetchGames(ctx)
	if err == nil {
		l.games = games
		l.fetchedAt = l.now()
		if l.archive != nil {
			if archiveErr := l.archive.SaveSnapshot(games); archiveErr != nil {
				log.Error("Failed to archive game log snapshot", "error", archiveErr)
			}
		}
		return games, nil
	}

	l.metrics.IncFetchFailures()
	log.Error("Failed to fetch game log", "error", err)

	if l.games != nil {
		log.Warn("Serving stale game log after fetch failure", "age", l.now().Sub(l.fetchedAt))
		return l.games, nil
	}

	if l.archive != nil {
		games, fetchedAt, archiveErr := l.archive.LatestSnapshot()
		if archiveErr == nil {
			l.metrics.IncSnapshotFallbacks()
			log.Warn("Serving archived game log after fetch failure", "snapshot_age", l.now().Sub(fetchedAt))
			// Keep the snapshot in memory but leave the entry stale so the
			// next load retries the feed.
			l.games = games
			return games, nil
		}
		if archiveErr != archive.ErrNoSnapshot {
			log.Error("Failed to read archived snapshot", "error", archiveErr)
		}
	}

	return nil, fmt.Errorf("failed to load game log: %w", err)
}

// Clear implements Interface.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.games = nil
	l.fetchedAt = time.Time{}
	log.Info("Game log cache cleared")
}
