package sheets

import (
	"context"
	"sync"

	"github.com/tractorclub/levelboard/internal/tractor"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spy for the fetch call
	FetchGamesFunc func(ctx context.Context) ([]tractor.GameRecord, error)

	// Call record
	FetchGamesCalls int
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears the call record.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchGamesCalls = 0
}

func (m *MockClient) FetchGames(ctx context.Context) ([]tractor.GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchGamesCalls++
	if m.FetchGamesFunc != nil {
		return m.FetchGamesFunc(ctx)
	}
	return []tractor.GameRecord{}, nil
}
