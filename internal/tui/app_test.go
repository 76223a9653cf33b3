package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyedit/internal/config"
	"skyedit/internal/database"
	"skyedit/internal/savefile"
)

const janeDoe = "pilot Jane Doe\n" +
	"date 2024-01-01\n" +
	"system Sol\n" +
	"planet \"Earth\"\n" +
	"\"reputation with\"\n" +
	"\t\"Merchants\" 50\n"

func newTestApp(t *testing.T) (*SkyEditApp, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Jane Doe.txt")
	require.NoError(t, os.WriteFile(path, []byte(janeDoe), 0o644))

	db := database.NewDatabase()
	require.NoError(t, db.OpenDatabase(":memory:"))
	t.Cleanup(func() { db.CloseDatabase() })

	sa := NewApplication(Options{
		Config:  config.Config{SaveDir: dir, Theme: "classic"},
		History: db,
	})
	return sa, path
}

func frontPage(sa *SkyEditApp) string {
	name, _ := sa.pages.GetFrontPage()
	return name
}

func TestApp_LoadFolder(t *testing.T) {
	sa, path := newTestApp(t)
	sa.loadFolder()

	entries := sa.browser.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].Path)
}

func TestApp_LoadFolderInvalid(t *testing.T) {
	sa := NewApplication(Options{Config: config.Config{SaveDir: filepath.Join(t.TempDir(), "missing")}})
	sa.loadFolder()

	assert.Empty(t, sa.browser.Entries())
	assert.Contains(t, sa.status.Text(), msgInvalidFolder)
}

func TestApp_OpenMissingFile(t *testing.T) {
	sa, path := newTestApp(t)
	sa.openFile(path + ".gone")

	assert.Nil(t, sa.session)
	assert.Equal(t, pageModal, frontPage(sa))
	assert.Contains(t, sa.status.Text(), msgFileNotFound)

	sa.closeModal()
	assert.False(t, sa.modalVisible)
	sa.openFile(path)
	assert.NotNil(t, sa.session, "session usable after a failed load")
}

func TestApp_EditAndSave(t *testing.T) {
	sa, path := newTestApp(t)
	sa.openFile(path)
	require.NotNil(t, sa.session)
	assert.Equal(t, pageEditor, frontPage(sa))

	entry, ok := sa.reputation.Selected()
	require.True(t, ok)
	sa.editReputation(entry)
	assert.True(t, sa.modalVisible)

	sa.applyReputation(entry.Line, entry.Faction, 75)
	assert.False(t, sa.modalVisible)
	assert.Contains(t, sa.status.Text(), "*modified*")

	sa.save()
	assert.Equal(t, pageModal, frontPage(sa))
	assert.Contains(t, sa.status.Text(), msgSaveSucceeded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\t\"Merchants\" 75\n")

	recent, err := sa.opts.History.RecentFiles(5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Jane Doe", recent[0].Pilot)
}

func TestApp_OwnSaveNotReportedAsExternalChange(t *testing.T) {
	sa, path := newTestApp(t)
	sa.openFile(path)
	require.NotNil(t, sa.session)

	sa.pilotChanged(savefile.PilotInfo{Name: "Jane Roe", Date: "2024-01-01", System: "Sol", Planet: "Earth"})
	sa.save()
	sa.saveChanged(path)
	assert.Contains(t, sa.status.Text(), msgSaveSucceeded)

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	sa.saveChanged(path)
	assert.Contains(t, sa.status.Text(), "File changed on disk")
}

func TestApp_BackWithUnsavedChangesAsks(t *testing.T) {
	sa, path := newTestApp(t)
	sa.openFile(path)
	require.NoError(t, sa.session.SetReputation(5, "Merchants", 1))

	sa.back()
	assert.Equal(t, pageModal, frontPage(sa))
	assert.NotNil(t, sa.session)
}

func TestApp_SaveWithoutFile(t *testing.T) {
	sa, _ := newTestApp(t)
	sa.save()
	assert.Contains(t, sa.status.Text(), msgNoSelection)
}

func TestApp_ShortcutsIgnoredWhileModalOpen(t *testing.T) {
	sa, _ := newTestApp(t)
	ctrlS := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	assert.Nil(t, sa.handleKeyEvent(ctrlS))

	sa.showMessage("Info", "hello")
	assert.Equal(t, ctrlS, sa.handleKeyEvent(ctrlS))
}
