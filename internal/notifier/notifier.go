package notifier

import (
	"github.com/tractorclub/levelboard/internal/stats"
)

// Notifier defines a high-level interface for pushing league stats to the
// channel. This decouples the rest of the application from the specific
// notification provider (e.g., Slack).
type Notifier interface {
	// SendLeaderboards posts the ranked tables for one deck partition.
	SendLeaderboards(decks int, boards map[stats.Metric][]stats.Entry, dryRun bool) error
	// SendPlayerStats posts one player's stat card for one deck partition.
	SendPlayerStats(player string, decks int, bundle stats.PlayerStats, dryRun bool) error
	// SendPlayerNotFound posts a "no such player" notice.
	SendPlayerNotFound(query string, dryRun bool) error
}
