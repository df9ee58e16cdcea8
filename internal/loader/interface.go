package loader

import (
	"context"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// Interface is the loading contract the server consumes.
type Interface interface {
	// Load returns the current game table, fetching it if the cached copy
	// is missing or stale. forceRefresh bypasses the freshness window.
	Load(ctx context.Context, forceRefresh bool) ([]tractor.GameRecord, error)
	// Clear discards the in-memory cache entry; the next Load always
	// performs a fresh fetch.
	Clear()
}
