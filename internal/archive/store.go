package archive

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// Number of snapshots retained after each save.
const retainedSnapshots = 10

// store handles all database operations for the snapshot archive.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new snapshot Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

var _ Store = (*store)(nil)

func (s *store) SaveSnapshot(games []tractor.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := msgpack.Marshal(games)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		"INSERT INTO snapshots (id, fetched_at, game_count, games) VALUES (?, ?, ?, ?)",
		uuid.NewString(), time.Now().Unix(), len(games), blob,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	// Keep the newest N snapshots, drop the rest.
	_, err = tx.Exec(`
		DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY fetched_at DESC, rowid DESC LIMIT ?
		)`, retainedSnapshots)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug("Saved game log snapshot", "games", len(games))
	return nil
}

func (s *store) LatestSnapshot() ([]tractor.GameRecord, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		fetchedAt int64
		blob      []byte
	)
	err := s.db.QueryRow(
		"SELECT fetched_at, games FROM snapshots ORDER BY fetched_at DESC, rowid DESC LIMIT 1",
	).Scan(&fetchedAt, &blob)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var games []tractor.GameRecord
	if err := msgpack.Unmarshal(blob, &games); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return games, time.Unix(fetchedAt, 0), nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM snapshots")
	return err
}
