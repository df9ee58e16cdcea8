package archive

import (
	"sync"
	"time"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveSnapshotFunc   func(games []tractor.GameRecord) error
	LatestSnapshotFunc func() ([]tractor.GameRecord, time.Time, error)
	ClearFunc          func() error

	// Call records
	SaveSnapshotCalls   [][]tractor.GameRecord
	LatestSnapshotCalls int
	ClearCalls          int
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SaveSnapshot(games []tractor.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveSnapshotCalls = append(m.SaveSnapshotCalls, games)
	if m.SaveSnapshotFunc != nil {
		return m.SaveSnapshotFunc(games)
	}
	return nil
}

func (m *MockStore) LatestSnapshot() ([]tractor.GameRecord, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LatestSnapshotCalls++
	if m.LatestSnapshotFunc != nil {
		return m.LatestSnapshotFunc()
	}
	return nil, time.Time{}, ErrNoSnapshot
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
