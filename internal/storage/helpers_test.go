// ABOUTME: Shared fixtures for storage tests.
// ABOUTME: Repositories run over in-memory badger unless a test needs a file.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harperreed/trainer/internal/kv"
	"github.com/harperreed/trainer/internal/models"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	store, err := kv.OpenBadgerInMemory()
	require.NoError(t, err)
	repo, err := New(store)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func setupSQLiteRepo(t *testing.T) *Repository {
	t.Helper()
	store, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "trainer.db"))
	require.NoError(t, err)
	repo, err := New(store)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// readOnlyStore rejects writes the way a locked charm store does.
type readOnlyStore struct {
	kv.Store
}

func (readOnlyStore) Set(string, []byte) error { return kv.ErrReadOnly }

func (readOnlyStore) Delete(string) error { return kv.ErrReadOnly }

func completedWorkout(id string, date time.Time, sets ...models.WorkoutSet) *models.Workout {
	w := models.NewWorkout("Workout " + id).WithDate(date)
	w.ID = id
	for i := range sets {
		sets[i].Completed = true
	}
	w.Sets = sets
	w.Completed = true
	return w
}
