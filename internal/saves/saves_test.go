package saves

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "jane 10.txt"), "pilot Jane\n")
	touch(t, filepath.Join(dir, "Jane 2.txt"), "pilot Jane\n")
	touch(t, filepath.Join(dir, "bob.TXT"), "pilot Bob\n")
	touch(t, filepath.Join(dir, "notes.md"), "not a save")
	touch(t, filepath.Join(dir, ".hidden.txt"), "pilot X\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup.txt"), 0o755))

	entries, err := List(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"bob.TXT", "Jane 2.txt", "jane 10.txt"}, names)
	assert.Equal(t, filepath.Join(dir, "bob.TXT"), entries[0].Path)
	assert.Equal(t, int64(len("pilot Bob\n")), entries[0].Size)
}

func TestList_InvalidFolder(t *testing.T) {
	_, err := List("")
	assert.ErrorIs(t, err, ErrNoFolder)

	_, err = List(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrNoFolder)

	file := filepath.Join(t.TempDir(), "file.txt")
	touch(t, file, "")
	_, err = List(file)
	assert.ErrorIs(t, err, ErrNoFolder)
}

func TestEntry_Describe(t *testing.T) {
	now := time.Date(3014, 1, 1, 12, 0, 0, 0, time.UTC)
	e := Entry{Size: 2048, ModTime: now.Add(-3 * time.Minute)}
	assert.Equal(t, "2.0 kB, 3 minutes ago", e.Describe(now))
}

func TestWatcher_ReportsNewSave(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	path := filepath.Join(dir, "Jane Doe.txt")
	touch(t, path, "pilot Jane Doe\n")
	touch(t, filepath.Join(dir, "ignored.log"), "x")

	select {
	case got := <-w.Changes:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for new save file")
	}
}
