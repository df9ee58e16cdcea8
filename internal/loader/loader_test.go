package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractorclub/levelboard/internal/archive"
	"github.com/tractorclub/levelboard/internal/metrics"
	"github.com/tractorclub/levelboard/internal/sheets"
	"github.com/tractorclub/levelboard/internal/tractor"
)

var sampleGames = []tractor.GameRecord{
	{Attacking: []string{"X"}, Defending: []string{"Z", "W"}, Decks: 2, Points: 30, Result: "A+1"},
}

func newTestLoader(client sheets.Client, store archive.Store) (*Loader, *time.Time) {
	l := New(client, store, metrics.NewMock(), DefaultTTL)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLoadCachesWithinFreshnessWindow(t *testing.T) {
	client := sheets.NewMockClient()
	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return sampleGames, nil
	}
	l, now := newTestLoader(client, nil)

	games, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, sampleGames, games)
	assert.Equal(t, 1, client.FetchGamesCalls)

	// Second load inside the window must not hit the network.
	*now = now.Add(4 * time.Minute)
	games, err = l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, sampleGames, games)
	assert.Equal(t, 1, client.FetchGamesCalls)
}

func TestLoadRefetchesAfterWindowElapses(t *testing.T) {
	client := sheets.NewMockClient()
	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return sampleGames, nil
	}
	l, now := newTestLoader(client, nil)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)

	*now = now.Add(5*time.Minute + time.Second)
	_, err = l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, client.FetchGamesCalls)
}

func TestLoadForceRefreshBypassesCache(t *testing.T) {
	client := sheets.NewMockClient()
	l, _ := newTestLoader(client, nil)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	_, err = l.Load(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, client.FetchGamesCalls)
}

func TestClearForcesFreshFetch(t *testing.T) {
	client := sheets.NewMockClient()
	l, _ := newTestLoader(client, nil)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)

	l.Clear()

	_, err = l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, client.FetchGamesCalls)
}

func TestLoadServesStaleEntryOnFetchFailure(t *testing.T) {
	client := sheets.NewMockClient()
	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return sampleGames, nil
	}
	l, now := newTestLoader(client, nil)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)

	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return nil, errors.New("sheet unreachable")
	}

	// Well past the freshness window: the stale entry is still served.
	*now = now.Add(2 * time.Hour)
	games, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, sampleGames, games)
}

func TestLoadFallsBackToArchivedSnapshot(t *testing.T) {
	client := sheets.NewMockClient()
	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return nil, errors.New("sheet unreachable")
	}
	store := archive.NewMockStore()
	store.LatestSnapshotFunc = func() ([]tractor.GameRecord, time.Time, error) {
		return sampleGames, time.Now().Add(-time.Hour), nil
	}
	l, _ := newTestLoader(client, store)

	games, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, sampleGames, games)
	assert.Equal(t, 1, store.LatestSnapshotCalls)
}

func TestLoadErrorsWithNoFallback(t *testing.T) {
	client := sheets.NewMockClient()
	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return nil, errors.New("sheet unreachable")
	}
	l, _ := newTestLoader(client, archive.NewMockStore())

	_, err := l.Load(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet unreachable")
}

func TestLoadArchivesSuccessfulFetch(t *testing.T) {
	client := sheets.NewMockClient()
	client.FetchGamesFunc = func(ctx context.Context) ([]tractor.GameRecord, error) {
		return sampleGames, nil
	}
	store := archive.NewMockStore()
	l, _ := newTestLoader(client, store)

	_, err := l.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, store.SaveSnapshotCalls, 1)
	assert.Equal(t, sampleGames, store.SaveSnapshotCalls[0])
}
