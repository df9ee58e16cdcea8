package loader

import (
	"context"
	"sync"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// MockLoader is a mock implementation of the Interface for testing.
// It is safe for concurrent use.
type MockLoader struct {
	mu sync.Mutex

	// Spies for method calls
	LoadFunc func(ctx context.Context, forceRefresh bool) ([]tractor.GameRecord, error)

	// Call records
	LoadCalls  []bool
	ClearCalls int
}

// NewMockLoader creates a new mock instance.
func NewMockLoader() *MockLoader {
	return &MockLoader{}
}

func (m *MockLoader) Load(ctx context.Context, forceRefresh bool) ([]tractor.GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, forceRefresh)
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, forceRefresh)
	}
	return []tractor.GameRecord{}, nil
}

func (m *MockLoader) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}
