package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punch-cli/punch/internal/models"
)

func newTestStore(t *testing.T) *EntryStore {
	t.Helper()

	gdb := openTestDB(t)
	require.NoError(t, Migrate(gdb))
	return NewEntryStore(gdb)
}

func closedEntry(id, taskName string, start time.Time) *models.Entry {
	end := start.Add(time.Hour)
	return &models.Entry{ID: id, TaskName: taskName, StartTime: start, EndTime: &end}
}

func TestInsertAssignsIDAndTimestamps(t *testing.T) {
	store := newTestStore(t)

	entry, err := store.Insert(&models.Entry{TaskName: "work", StartTime: time.Now()})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.False(t, entry.UpdatedAt.IsZero())

	// A caller-supplied id is kept.
	fixed, err := store.Insert(closedEntry("fixed-id", "other", time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", fixed.ID)
}

func TestFindActiveAndMostRecentOnEmptyStore(t *testing.T) {
	store := newTestStore(t)

	active, err := store.FindActive()
	require.NoError(t, err)
	assert.Nil(t, active)

	recent, err := store.FindMostRecent()
	require.NoError(t, err)
	assert.Nil(t, recent)
}

func TestFindByIDPrefixIsCaseSensitiveAndOrdered(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-5 * time.Hour)
	for i, id := range []string{"abcZ", "abcy", "abcx", "ABCw"} {
		_, err := store.Insert(closedEntry(id, "e", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	matches, err := store.FindByIDPrefix("abc")
	require.NoError(t, err)

	// "ABCw" is excluded; results come back ordered by id regardless of
	// insertion order.
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"abcZ", "abcx", "abcy"}, ids)
}

func TestFindAtOffsetByRecency(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-10 * time.Hour)
	_, err := store.Insert(closedEntry("a", "oldest", base))
	require.NoError(t, err)
	_, err = store.Insert(closedEntry("b", "newest", base.Add(2*time.Hour)))
	require.NoError(t, err)

	got, err := store.FindAtOffsetByRecency(0)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "newest", got.TaskName)

	got, err = store.FindAtOffsetByRecency(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "oldest", got.TaskName)

	got, err = store.FindAtOffsetByRecency(2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMissingRowReturnsNil(t *testing.T) {
	store := newTestStore(t)

	updated, err := store.Update("no-such-id", map[string]any{"task_name": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateAppliesFields(t *testing.T) {
	store := newTestStore(t)

	entry, err := store.Insert(closedEntry("row", "before", time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	updated, err := store.Update(entry.ID, map[string]any{
		"task_name": "after",
		"project":   "backend",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "after", updated.TaskName)
	require.NotNil(t, updated.Project)
	assert.Equal(t, "backend", *updated.Project)
}
