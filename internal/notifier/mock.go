package notifier

import (
	"sync"

	"github.com/tractorclub/levelboard/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendLeaderboardsCalls []struct {
		Decks  int
		Boards map[stats.Metric][]stats.Entry
	}
	SendPlayerStatsCalls []struct {
		Player string
		Decks  int
		Bundle stats.PlayerStats
	}
	SendPlayerNotFoundCalls []string

	// Optional error injected into every call
	Err error
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardsCalls = nil
	m.SendPlayerStatsCalls = nil
	m.SendPlayerNotFoundCalls = nil
}

func (m *Mock) SendLeaderboards(decks int, boards map[stats.Metric][]stats.Entry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardsCalls = append(m.SendLeaderboardsCalls, struct {
		Decks  int
		Boards map[stats.Metric][]stats.Entry
	}{decks, boards})
	return m.Err
}

func (m *Mock) SendPlayerStats(player string, decks int, bundle stats.PlayerStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, struct {
		Player string
		Decks  int
		Bundle stats.PlayerStats
	}{player, decks, bundle})
	return m.Err
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	return m.Err
}
