package database

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteDatabase {
	t.Helper()
	db := NewDatabase()
	base := time.Date(3013, 11, 16, 12, 0, 0, 0, time.UTC)
	tick := 0
	db.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	require.NoError(t, db.OpenDatabase(filepath.Join(t.TempDir(), "history.db")))
	t.Cleanup(func() { db.CloseDatabase() })
	return db
}

func TestOpenDatabase_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	status, err := db.MigrationStatus()
	require.NoError(t, err)
	require.Len(t, status, len(migrations))
	for _, s := range status {
		assert.True(t, s.Applied, "migration %d", s.ID)
	}

	assert.Error(t, db.OpenDatabase("again.db"), "second open must fail")
}

func TestOpenDatabase_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db := NewDatabase()
	require.NoError(t, db.OpenDatabase(path))
	require.NoError(t, db.RecordOpen("/saves/a.txt", "Jane"))
	require.NoError(t, db.CloseDatabase())

	reopened := NewDatabase()
	require.NoError(t, reopened.OpenDatabase(path))
	defer reopened.CloseDatabase()

	files, err := reopened.RecentFiles(10)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Jane", files[0].Pilot)
}

func TestRecentFiles_NewestFirstAndDeduplicated(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.RecordOpen("/saves/a.txt", "Jane"))
	require.NoError(t, db.RecordOpen("/saves/b.txt", "Bob"))
	require.NoError(t, db.RecordOpen("/saves/a.txt", "Jane Doe"))

	files, err := db.RecentFiles(10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/saves/a.txt", files[0].Path)
	assert.Equal(t, "Jane Doe", files[0].Pilot)
	assert.Equal(t, "/saves/b.txt", files[1].Path)

	limited, err := db.RecentFiles(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveEvents(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.RecordSave("/saves/a.txt", 3, nil))
	require.NoError(t, db.RecordSave("/saves/a.txt", 0, errors.New("disk full")))
	require.NoError(t, db.RecordSave("/saves/b.txt", 1, nil))

	events, err := db.SaveEvents("/saves/a.txt", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.False(t, events[0].OK)
	assert.Equal(t, "disk full", events[0].Error)
	assert.True(t, events[1].OK)
	assert.Equal(t, 3, events[1].ChangedLines)
}

func TestClosedDatabase(t *testing.T) {
	db := NewDatabase()
	assert.ErrorIs(t, db.RecordOpen("x", "y"), ErrNotOpen)
	assert.ErrorIs(t, db.RecordSave("x", 0, nil), ErrNotOpen)
	_, err := db.RecentFiles(1)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.NoError(t, db.CloseDatabase())
	assert.False(t, db.GetDatabaseOpen())
}
