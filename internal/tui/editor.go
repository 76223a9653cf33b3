package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"skyedit/internal/log"
	"skyedit/internal/savefile"
	"skyedit/internal/session"
	ui "skyedit/internal/tui/components"
)

const (
	msgFileNotFound   = "Error: File not found."
	msgNoSelection    = "No save file selected!"
	msgNoInstallPath  = "Installation path is not set!"
	msgSaveSucceeded  = "Changes saved successfully!"
	msgSaveFailed     = "Failed to save changes."
	msgUnsavedChanges = "Discard unsaved changes?"
)

// openFile loads path into a new session and shows the editor
func (sa *SkyEditApp) openFile(path string) {
	opts := session.Options{
		InstallPath: sa.opts.Config.InstallPath,
		CheckImages: true,
	}
	if sa.opts.History != nil && sa.opts.History.GetDatabaseOpen() {
		opts.History = sa.opts.History
	}

	s, err := session.Open(path, opts)
	if err != nil {
		if errors.Is(err, savefile.ErrNotFound) {
			sa.status.SetMessage(ui.MessageError, msgFileNotFound)
			sa.showMessage("Error", msgFileNotFound)
			return
		}
		log.Error("failed to open save file", "path", path, "error", err)
		sa.status.SetMessage(ui.MessageError, err.Error())
		sa.showMessage("Error", fmt.Sprintf("Failed to load save file: %v", err))
		return
	}

	sa.session = s
	sa.refreshEditor()
	sa.pages.SwitchToPage(pageEditor)
	sa.app.SetFocus(sa.pilotForm.GetForm())
	sa.status.SetMessage(ui.MessageInfo, "Loaded "+s.Snapshot().Pilot.Name)
	sa.showWarnings(s.Snapshot().Warnings)
}

// refreshEditor rebuilds every editor widget from the session
func (sa *SkyEditApp) refreshEditor() {
	snap := sa.session.Snapshot()
	sa.pilotForm.SetPilot(snap.Pilot)
	sa.reputation.SetEntries(snap.Reputation)
	sa.ships.SetShips(snap.Ships)
	sa.status.SetFile(snap.Path, snap.Dirty)
}

func (sa *SkyEditApp) showWarnings(warnings []string) {
	for _, warning := range warnings {
		if warning == savefile.WarnNoInstallPath {
			warning = msgNoInstallPath
		}
		sa.status.SetMessage(ui.MessageWarning, warning)
	}
}

func (sa *SkyEditApp) updateDirty() {
	if sa.session != nil {
		sa.status.SetFile(sa.session.Path(), sa.session.Dirty())
	}
}

// pilotChanged receives every keystroke in the pilot form
func (sa *SkyEditApp) pilotChanged(p savefile.PilotInfo) {
	if sa.session == nil {
		return
	}
	sa.session.SetPilot(p)
	sa.updateDirty()
}

// editReputation opens the edit dialog for entry
func (sa *SkyEditApp) editReputation(entry savefile.ReputationEntry) {
	dialog := ui.NewReputationDialog(entry, sa.applyReputation, sa.closeDialog)
	dialog.SetDoneFunc(sa.closeDialog)
	sa.showDialog(dialog)
}

func (sa *SkyEditApp) applyReputation(line int, faction string, value int) {
	sa.closeDialog()
	if sa.session == nil {
		return
	}
	if err := sa.session.SetReputation(line, faction, value); err != nil {
		log.Warn("rejected reputation edit", "line", line, "error", err)
		sa.status.SetMessage(ui.MessageError, err.Error())
		return
	}
	sa.reputation.SetEntries(sa.session.Snapshot().Reputation)
	sa.updateDirty()
}

// save writes the session back to disk
func (sa *SkyEditApp) save() {
	if sa.session == nil {
		sa.status.SetMessage(ui.MessageWarning, msgNoSelection)
		return
	}

	if err := sa.session.Save(); err != nil {
		sa.status.SetMessage(ui.MessageError, msgSaveFailed)
		sa.showMessage("Error", msgSaveFailed)
		return
	}

	sa.savedMod = modTime(sa.session.Path())
	sa.refreshEditor()
	sa.status.SetMessage(ui.MessageSuccess, msgSaveSucceeded)
	sa.showMessage("Success", msgSaveSucceeded)
}

// reload discards edits and re-reads the file
func (sa *SkyEditApp) reload() {
	if sa.session == nil {
		sa.status.SetMessage(ui.MessageWarning, msgNoSelection)
		return
	}

	discard := func() {
		if err := sa.session.Reload(); err != nil {
			if errors.Is(err, savefile.ErrNotFound) {
				sa.showMessage("Error", msgFileNotFound)
				return
			}
			sa.showMessage("Error", fmt.Sprintf("Failed to load save file: %v", err))
			return
		}
		sa.refreshEditor()
		sa.status.SetMessage(ui.MessageInfo, "Reloaded from disk")
	}

	if sa.session.Dirty() {
		sa.confirm(msgUnsavedChanges, "Discard", discard)
		return
	}
	discard()
}

// back returns to the save browser
func (sa *SkyEditApp) back() {
	if sa.session == nil {
		return
	}

	leave := func() {
		sa.session = nil
		sa.status.SetFile("", false)
		sa.pages.SwitchToPage(pageBrowser)
		sa.app.SetFocus(sa.browser.GetList())
		sa.loadFolder()
	}

	if sa.session.Dirty() {
		sa.confirm(msgUnsavedChanges, "Discard", leave)
		return
	}
	leave()
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
