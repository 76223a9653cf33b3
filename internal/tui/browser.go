package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"skyedit/internal/log"
	"skyedit/internal/saves"
	ui "skyedit/internal/tui/components"
)

const (
	msgInvalidFolder = "Save folder is invalid or does not exist!"
	recentLimit      = 10
)

// loadFolder lists the configured save folder in the browser
func (sa *SkyEditApp) loadFolder() {
	dir := sa.opts.Config.SaveDir
	sa.browser.SetFolder(dir)

	entries, err := saves.List(dir)
	if err != nil {
		sa.browser.SetEntries(nil)
		if errors.Is(err, saves.ErrNoFolder) {
			sa.status.SetMessage(ui.MessageError, msgInvalidFolder)
			return
		}
		log.Error("failed to list saves", "dir", dir, "error", err)
		sa.status.SetMessage(ui.MessageError, fmt.Sprintf("Failed to load save files: %v", err))
		return
	}

	sa.browser.SetEntries(entries)
	if sa.session == nil {
		sa.status.SetMessage(ui.MessageInfo, fmt.Sprintf("%d save files", len(entries)))
	}
}

// startWatcher refreshes the browser when the game writes a save
func (sa *SkyEditApp) startWatcher() {
	dir := sa.opts.Config.SaveDir
	if dir == "" {
		return
	}

	w, err := saves.NewWatcher(dir)
	if err != nil {
		log.Warn("failed to create save folder watcher", "error", err)
		return
	}
	if err := w.Start(); err != nil {
		log.Warn("failed to watch save folder", "dir", dir, "error", err)
		return
	}
	sa.watcher = w

	go func() {
		for path := range w.Changes {
			sa.app.QueueUpdateDraw(func() {
				sa.saveChanged(path)
			})
		}
	}()
}

func (sa *SkyEditApp) stopWatcher() {
	if sa.watcher != nil {
		sa.watcher.Stop()
		sa.watcher = nil
	}
}

// saveChanged runs on the UI goroutine for every watcher event. Events for
// the open file are ignored while it still carries our own last write.
func (sa *SkyEditApp) saveChanged(path string) {
	sa.loadFolder()
	if sa.session == nil || sa.session.Path() != path {
		return
	}
	if mod := modTime(path); !sa.savedMod.IsZero() && mod.Equal(sa.savedMod) {
		return
	}
	sa.status.SetMessage(ui.MessageWarning, "File changed on disk, Ctrl+R to reload")
}

// showRecentFiles lists recently opened saves from the history database
func (sa *SkyEditApp) showRecentFiles() {
	if sa.opts.History == nil || !sa.opts.History.GetDatabaseOpen() {
		sa.status.SetMessage(ui.MessageWarning, "History is not available")
		return
	}

	files, err := sa.opts.History.RecentFiles(recentLimit)
	if err != nil {
		log.Error("failed to read recent files", "error", err)
		sa.status.SetMessage(ui.MessageError, "Failed to read recent files")
		return
	}
	if len(files) == 0 {
		sa.status.SetMessage(ui.MessageInfo, "No recent files")
		return
	}

	items := make([]ui.ModalItem, 0, len(files))
	for _, file := range files {
		label := file.Pilot
		if label == "" {
			label = filepath.Base(file.Path)
		}
		items = append(items, ui.ModalItem{
			Label:  label,
			Detail: fmt.Sprintf("%s (%s)", file.Path, humanize.Time(file.OpenedAt)),
			Value:  file.Path,
		})
	}

	list := ui.NewModalList("Recent Files", items, func(item ui.ModalItem) {
		sa.closeDialog()
		sa.openRecent(item.Value)
	})
	list.SetDoneFunc(sa.closeDialog)

	sa.modalVisible = true
	sa.pages.AddPage(pageDialog, list.GetView(), true, true)
	sa.app.SetFocus(list.GetList())
}

// openRecent switches files, asking first when edits are unsaved
func (sa *SkyEditApp) openRecent(path string) {
	if sa.session != nil && sa.session.Dirty() {
		sa.confirm(msgUnsavedChanges, "Discard", func() { sa.openFile(path) })
		return
	}
	sa.openFile(path)
}
