package archive

import (
	"errors"
	"time"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// ErrNoSnapshot is returned when the archive holds no snapshot at all.
var ErrNoSnapshot = errors.New("archive: no snapshot available")

// Store persists fetched game tables so a feed outage after a restart can
// still serve the last good data.
type Store interface {
	// SaveSnapshot stores the table with the current timestamp and prunes
	// old snapshots beyond the retention limit.
	SaveSnapshot(games []tractor.GameRecord) error
	// LatestSnapshot returns the most recently saved table and its fetch
	// time, or ErrNoSnapshot.
	LatestSnapshot() ([]tractor.GameRecord, time.Time, error)
	// Clear removes every snapshot.
	Clear() error
}
