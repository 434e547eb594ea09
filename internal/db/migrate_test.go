package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/punch-cli/punch/internal/models"
)

// openTestDB opens a scratch database file. :memory: is avoided because
// the sql connection pool would give each connection its own database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "punch.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })
	return gdb
}

func TestMigrateCreatesSchema(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, Migrate(gdb))

	// The entries table is usable after migration.
	store := NewEntryStore(gdb)
	_, err := store.Insert(&models.Entry{TaskName: "smoke", StartTime: time.Now()})
	require.NoError(t, err)

	var ids []string
	require.NoError(t, gdb.Model(&appliedMigration{}).Pluck("id", &ids).Error)
	assert.Equal(t, []string{"0000_initial"}, ids)
}

func TestMigrateIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)

	require.NoError(t, Migrate(gdb))
	require.NoError(t, Migrate(gdb))
	require.NoError(t, Migrate(gdb))

	var count int64
	require.NoError(t, gdb.Model(&appliedMigration{}).Count(&count).Error)
	assert.Equal(t, int64(len(Migrations)), count)
}

func TestOpenAtCreatesDirectoryAndFile(t *testing.T) {
	path := t.TempDir() + "/nested/data/punch.db"

	gdb, err := OpenAt(path)
	require.NoError(t, err)

	store := NewEntryStore(gdb)
	_, err = store.Insert(&models.Entry{TaskName: "persisted", StartTime: time.Now()})
	require.NoError(t, err)

	// Reopening sees the same data and reruns migrations harmlessly.
	require.NoError(t, Close(gdb))
	gdb, err = OpenAt(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	var count int64
	require.NoError(t, gdb.Model(&models.Entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
