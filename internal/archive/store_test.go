package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractorclub/levelboard/internal/archive"
	"github.com/tractorclub/levelboard/internal/database"
	"github.com/tractorclub/levelboard/internal/tractor"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (archive.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return archive.New(db), dbTeardown
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	games := []tractor.GameRecord{
		{
			Attacking: []string{"Alice", "Bob"},
			Defending: []string{"Carol", "Dave", "Erin", "Frank"},
			Decks:     2,
			Points:    85,
			Result:    "A+2",
		},
		{
			Attacking: []string{"Grace"},
			Defending: []string{"Judy", "Ken", "Lea", "Mal"},
			Decks:     3,
			Points:    40,
			Result:    "D+1",
		},
	}

	require.NoError(t, store.SaveSnapshot(games))

	loaded, fetchedAt, err := store.LatestSnapshot()
	require.NoError(t, err)
	assert.Equal(t, games, loaded)
	assert.False(t, fetchedAt.IsZero())
}

func TestLatestSnapshotEmptyArchive(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, _, err := store.LatestSnapshot()
	assert.ErrorIs(t, err, archive.ErrNoSnapshot)
}

func TestLatestSnapshotReturnsNewest(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	older := []tractor.GameRecord{{Decks: 2, Result: "Draw"}}
	newer := []tractor.GameRecord{{Decks: 2, Result: "A+1"}, {Decks: 3, Result: "D+2"}}

	require.NoError(t, store.SaveSnapshot(older))
	require.NoError(t, store.SaveSnapshot(newer))

	loaded, _, err := store.LatestSnapshot()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestClear(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.SaveSnapshot([]tractor.GameRecord{{Decks: 2}}))
	require.NoError(t, store.Clear())

	_, _, err := store.LatestSnapshot()
	assert.ErrorIs(t, err, archive.ErrNoSnapshot)
}
